package cli

import (
	"decline-mail-web/internal/config"

	"github.com/spf13/cobra"
)

// NewRootCmd はトップレベルの "declinemail" コマンドを生成し、サブコマンドを登録します。
func NewRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "declinemail",
		Short:         "丁寧なお断りメールを生成します",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(cfg),
		newGenerateCmd(cfg),
	)

	return root
}
