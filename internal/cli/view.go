package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/elena-krismer/nightingale/pkg/errors"
	"github.com/elena-krismer/nightingale/pkg/session"
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

// newViewCmd creates the view command: an interactive terminal browser for
// one accession. Without an argument it reopens the last view.
func newViewCmd(configPath *string) *cobra.Command {
	var opts fetchOpts

	cmd := &cobra.Command{
		Use:   "view [accession]",
		Short: "Browse a protein sequence interactively in the terminal",
		Long: `View opens an interactive sequence browser in the terminal.

Tracks share one viewport: panning and zooming keep the sequence,
variation, and contact rows aligned on the same visible range. The view
is remembered, so running view without an accession reopens where you
left off.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			lastView, lvErr := session.NewLastViewStore()
			if lvErr != nil {
				loggerFromContext(ctx).Debug("last-view store unavailable", "err", lvErr)
			}

			var accession string
			var initial *viewport.Range
			if len(args) == 1 {
				accession = args[0]
			} else if lastView != nil {
				sess, err := lastView.GetSession(ctx)
				if err != nil {
					return err
				}
				if sess != nil {
					accession = sess.Accession
					initial = &viewport.Range{Start: sess.DisplayStart, End: sess.DisplayEnd}
					printInfo("Reopening %s at %.0f:%.0f", accession, sess.DisplayStart, sess.DisplayEnd)
				}
			}
			if accession == "" {
				return errors.New(errors.ErrCodeInvalidInput,
					"no accession given and no previous view to reopen")
			}

			client, err := newUniProtClient(cfg)
			if err != nil {
				return err
			}
			vd, err := fetchViewData(ctx, client, accession, opts)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(
				newBrowserModel(vd.entry, vd.tracks, initial),
				tea.WithAltScreen(),
			).Run()
			if err != nil {
				return err
			}

			if m, ok := final.(browserModel); ok && lastView != nil {
				saveLastView(cmd, lastView, vd, m.VisibleRange())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.contactsPath, "contacts", "", "contact map file for the links track")
	cmd.Flags().BoolVar(&opts.noVariants, "no-variants", false, "skip the variation track")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the response cache")

	return cmd
}

func saveLastView(cmd *cobra.Command, lastView *session.LastViewStore, vd *viewData, v viewport.Range) {
	sess := session.New(vd.entry.Accession, session.DefaultTTL)
	sess.DisplayStart, sess.DisplayEnd = v.Start, v.End
	for _, t := range vd.tracks {
		sess.Tracks = append(sess.Tracks, t.Name())
	}
	if err := lastView.SaveSession(cmd.Context(), sess); err != nil {
		printWarning("could not save last view: %v", err)
	}
}
