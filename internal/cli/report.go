package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fireline-tools/fireline/internal/report"
	"github.com/fireline-tools/fireline/pkg/types"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Create, inspect, and edit investigation reports",
	}
	cmd.AddCommand(
		newReportCreateCmd(),
		newReportListCmd(),
		newReportShowCmd(),
		newReportSetCmd(),
		newReportDeleteCmd(),
		newReportAttachCmd(),
	)
	return cmd
}

func newReportCreateCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new report skeleton for an investigator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openReportStore()
			if err != nil {
				fail(exitSysError, "report create", err)
			}
			sess, err := report.Create(store, owner)
			if err != nil {
				fail(exitUserError, "report create", err)
			}
			rep := sess.Report()
			sess.Close()
			if flags.jsonMode {
				return printJSON(rep.Meta)
			}
			fmt.Println(rep.Meta.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&owner, "owner", "o", "", "6-digit OEČ of the owning investigator")
	cmd.MarkFlagRequired("owner")
	return cmd
}

func newReportListCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openReportStore()
			if err != nil {
				fail(exitSysError, "report list", err)
			}
			sums, err := store.Summaries(owner)
			if err != nil {
				fail(exitSysError, "report list", err)
			}
			if flags.jsonMode {
				return printJSON(sums)
			}
			for _, s := range sums {
				fmt.Printf("%s\t%s\t%s\n", s.ID, s.OwnerID, s.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&owner, "owner", "o", "", "only reports owned by this OEČ")
	return cmd
}

func newReportShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openReportStore()
			if err != nil {
				fail(exitSysError, "report show", err)
			}
			rep, ok := store.Read(args[0])
			if !ok {
				fail(exitUserError, "report show", fmt.Errorf("report %q not found", args[0]))
			}
			return printJSON(rep)
		},
	}
}

func newReportSetCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "set <id> <section> <field> <value>",
		Short: "Set one field of a report and save it",
		Long: `Set assigns a single field of a named section and saves the report.
The value is parsed as JSON when possible, so lists and numbers work:

  fireline report set <id> conditions weather '"deštivo"'
  fireline report set <id> participants investigators '["123456","654321"]'

A value that is not valid JSON is taken as a plain string.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openReportStore()
			if err != nil {
				fail(exitSysError, "report set", err)
			}
			id, section, field := args[0], args[1], args[2]

			if owner == "" {
				rep, ok := store.Read(id)
				if !ok {
					fail(exitUserError, "report set", fmt.Errorf("report %q not found; pass --owner to create it", id))
				}
				owner = rep.Meta.OwnerID
			}

			sess, err := report.Open(store, id, owner)
			if err != nil {
				fail(exitUserError, "report set", err)
			}

			var value any
			if err := json.Unmarshal([]byte(args[3]), &value); err != nil {
				value = args[3]
			}
			if err := sess.SetField(section, field, value); err != nil {
				fail(exitUserError, "report set", err)
			}
			if err := sess.SaveAndClose(); err != nil {
				fail(exitSysError, "report set", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&owner, "owner", "o", "", "OEČ used when the report does not exist yet")
	return cmd
}

func newReportDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a report and its attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fail(exitUserError, "report delete", fmt.Errorf("refusing to delete %q without --force", args[0]))
			}
			store, err := openReportStore()
			if err != nil {
				fail(exitSysError, "report delete", err)
			}
			if err := store.Delete(args[0]); err != nil {
				fail(exitSysError, "report delete", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "confirm the deletion")
	return cmd
}

func newReportAttachCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "attach <id> <file>",
		Short: "Attach a photo or document to a report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch kind {
			case types.AttachmentSketch, types.AttachmentPhoto, types.AttachmentFile:
			default:
				fail(exitUserError, "report attach", fmt.Errorf("unknown attachment kind %q (expected %s, %s, or %s)",
					kind, types.AttachmentSketch, types.AttachmentPhoto, types.AttachmentFile))
			}
			if _, err := os.Stat(args[1]); err != nil {
				fail(exitUserError, "report attach", err)
			}
			store, err := openReportStore()
			if err != nil {
				fail(exitSysError, "report attach", err)
			}
			rep, ok := store.Read(args[0])
			if !ok {
				fail(exitUserError, "report attach", fmt.Errorf("report %q not found", args[0]))
			}
			sess, err := report.Open(store, args[0], rep.Meta.OwnerID)
			if err != nil {
				fail(exitUserError, "report attach", err)
			}
			att, err := sess.AddAttachment(kind, args[1])
			if err != nil {
				fail(exitSysError, "report attach", err)
			}
			if err := sess.SaveAndClose(); err != nil {
				fail(exitSysError, "report attach", err)
			}
			if flags.jsonMode {
				return printJSON(att)
			}
			fmt.Printf("attached %s (%s)\n", att.OriginalName, att.Kind)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", types.AttachmentPhoto, "attachment kind (sketch, photo, or file)")
	return cmd
}
