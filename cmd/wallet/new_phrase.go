package wallet

import (
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/wallet/seed"
)

const wordsFlag = "words"

var entropyBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

func newNewPhrase() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new-phrase",
		Short: "Generates a new BIP-39 seed phrase",
		RunE: func(cmd *cobra.Command, _ []string) error {
			words, err := cmd.Flags().GetInt(wordsFlag)
			if err != nil {
				return err
			}

			bits, ok := entropyBits[words]
			if !ok {
				return fmt.Errorf("invalid --%s %d, expected 12, 15, 18, 21 or 24", wordsFlag, words)
			}

			phrase, err := seed.NewPhrase(bits)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), phrase)

			return nil
		},
	}

	cmd.Flags().Int(wordsFlag, 12, "Number of words")

	return cmd
}
