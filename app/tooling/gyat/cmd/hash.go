package cmd

import (
	"fmt"

	"github.com/ardanlabs/gyatcoin/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

var hashBlock database.Block
var hashDifficulty uint

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Compute the hash for a set of block fields",
	RunE:  hashRun,
}

func init() {
	rootCmd.AddCommand(hashCmd)
	hashCmd.Flags().Uint32VarP(&hashBlock.Index, "index", "i", 0, "Index of the block.")
	hashCmd.Flags().StringVarP(&hashBlock.PrevBlockHash, "prev", "p", "", "Hash of the previous block.")
	hashCmd.Flags().Uint64VarP(&hashBlock.TimeStamp, "timestamp", "t", 0, "Unix timestamp of the block.")
	hashCmd.Flags().StringVarP(&hashBlock.Data, "data", "d", "", "Payload of the block.")
	hashCmd.Flags().Uint64VarP(&hashBlock.Nonce, "nonce", "n", 0, "Nonce of the block.")
	hashCmd.Flags().UintVarP(&hashDifficulty, "difficulty", "D", database.DefaultDifficulty, "Number of leading zeros required.")
}

func hashRun(cmd *cobra.Command, args []string) error {
	hash := hashBlock.ComputeHash()

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	fmt.Fprintf(cmd.OutOrStdout(), "solved[%d]: %t\n", hashDifficulty, database.IsHashSolved(hashDifficulty, hash))

	return nil
}
