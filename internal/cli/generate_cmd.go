package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"decline-mail-web/internal/builder"
	"decline-mail-web/internal/config"
	"decline-mail-web/internal/domain"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type generateOptions struct {
	req     domain.DeclineRequest
	sample  int
	offline bool
}

func newGenerateCmd(cfg *config.Config) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "お断りメールを 1 通生成して標準出力に書き出します",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg, req, opts.offline || cfg.TemplateOnly)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.req.CompanyName, "company", "", "Recipient company name")
	f.StringVar(&opts.req.ContactName, "contact", "", "Recipient contact name")
	f.StringVar(&opts.req.ServiceName, "service", "", "Proposed service name (optional)")
	f.StringVar(&opts.req.ReasonCode, "reason", "", "Reason code (budget, timing, alternative, feature, internal, other, custom)")
	f.StringVar(&opts.req.CustomReason, "custom-reason", "", "Free-text reason used with --reason custom")
	f.StringVar(&opts.req.ReceivedEmail, "received-email", "", "Text of the proposal email being answered")
	f.StringVar(&opts.req.AdditionalMessage, "message", "", "Additional message to include")
	f.StringVar(&opts.req.SenderName, "my-name", "", "Sender name")
	f.StringVar(&opts.req.SenderCompany, "my-company", "", "Sender company")
	f.StringVar(&opts.req.Tone, "tone", domain.ToneFormal, "Tone (formal, friendly, business)")
	f.Float64Var(&opts.req.Variation, "variation", 0, "Variation index; higher values raise the sampling temperature")
	f.IntVar(&opts.sample, "sample", 0, "Start from built-in sample N (1-based); explicit flags override its fields")
	f.BoolVar(&opts.offline, "offline", false, "Skip the completion API and use the built-in template")

	return cmd
}

// resolve はサンプル指定とフラグを合成してリクエストを作ります。明示的に指定されたフラグが優先されます。
func (o *generateOptions) resolve(flags *pflag.FlagSet) (domain.DeclineRequest, error) {
	if o.sample == 0 {
		return o.req, nil
	}

	samples := domain.Samples()
	if o.sample < 1 || o.sample > len(samples) {
		return domain.DeclineRequest{}, fmt.Errorf("--sample must be between 1 and %d", len(samples))
	}

	req := samples[o.sample-1]
	overrides := map[string]func(){
		"company":        func() { req.CompanyName = o.req.CompanyName },
		"contact":        func() { req.ContactName = o.req.ContactName },
		"service":        func() { req.ServiceName = o.req.ServiceName },
		"reason":         func() { req.ReasonCode = o.req.ReasonCode },
		"custom-reason":  func() { req.CustomReason = o.req.CustomReason },
		"received-email": func() { req.ReceivedEmail = o.req.ReceivedEmail },
		"message":        func() { req.AdditionalMessage = o.req.AdditionalMessage },
		"my-name":        func() { req.SenderName = o.req.SenderName },
		"my-company":     func() { req.SenderCompany = o.req.SenderCompany },
		"tone":           func() { req.Tone = o.req.Tone },
		"variation":      func() { req.Variation = o.req.Variation },
	}
	flags.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})
	return req, nil
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, req domain.DeclineRequest, offline bool) error {
	ctx := cmd.Context()
	container := builder.BuildOfflineContainer(ctx, cfg, offline)

	res, err := container.Pipeline.Execute(ctx, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeFieldErrors(cmd.ErrOrStderr(), verr)
		}
		return err
	}

	slog.InfoContext(ctx, "Generated decline email", "source", res.Source, "request_id", res.RequestID)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Email)
	return err
}

func writeFieldErrors(w io.Writer, verr *domain.ValidationError) {
	for _, f := range verr.Fields {
		fmt.Fprintf(w, "  --%s: %s\n", flagNameFor(f.Field), f.Message)
	}
}

// flagNameFor は入力項目名を対応するフラグ名に変換します。
func flagNameFor(field string) string {
	switch field {
	case "companyName":
		return "company"
	case "contactName":
		return "contact"
	case "reason":
		return "reason"
	case "customReason":
		return "custom-reason"
	case "myName":
		return "my-name"
	case "myCompany":
		return "my-company"
	default:
		return field
	}
}
