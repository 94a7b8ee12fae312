package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/adso-sena/agenda/internal/agenda"
	"github.com/adso-sena/agenda/internal/api"
	"github.com/adso-sena/agenda/internal/contacts"
	"github.com/adso-sena/agenda/internal/logger"
)

// Output formats accepted by list.
const (
	formatTable    = "table"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

var fieldOrder = []string{
	contacts.FieldNombre,
	contacts.FieldTelefono,
	contacts.FieldCorreo,
	contacts.FieldEtiqueta,
	contacts.FieldEmpresa,
}

// newController builds a controller over the configured API and loads the collection.
func (o *cliOptions) newController(ctx context.Context) (*agenda.Controller, error) {
	o.initStderrLogger()
	client := api.NewFromConfig(logger.L, o.cfg.API)
	ctrl := agenda.NewController(logger.L, client)
	if err := ctrl.Load(ctx); err != nil {
		return nil, userError(err)
	}
	return ctrl, nil
}

// userError replaces a controller failure with its user-facing message. The
// technical error has already been logged.
func userError(err error) error {
	var f *agenda.Failure
	if errors.As(err, &f) {
		return errors.New(f.Message())
	}
	return err
}

func newListCmd(opts *cliOptions) *cobra.Command {
	var (
		search string
		desc   bool
		format string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List contacts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := opts.newController(cmd.Context())
			if err != nil {
				return err
			}
			ctrl.SetSearch(search)
			ctrl.SetAscending(!desc)
			return writeContacts(cmd.OutOrStdout(), ctrl.Visible(), format)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by nombre, correo or etiqueta")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort Z-A")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, markdown")
	return cmd
}

func writeContacts(w io.Writer, items []contacts.Contact, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case formatMarkdown:
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		out, err := r.Render(contactsMarkdown(items))
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	case formatTable, "":
		if len(items) == 0 {
			_, err := fmt.Fprintln(w, "No se encontraron contactos que coincidan con la búsqueda.")
			return err
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "Nombre", "Teléfono", "Correo", "Etiqueta", "Empresa")
		for _, c := range items {
			t.Row(c.ID, c.Nombre, c.Telefono, c.Correo, c.Etiqueta, c.Empresa)
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unknown format %q (use: table, json, markdown)", format)
	}
}

func contactsMarkdown(items []contacts.Contact) string {
	var b strings.Builder
	b.WriteString("# Contactos\n\n")
	if len(items) == 0 {
		b.WriteString("_No se encontraron contactos que coincidan con la búsqueda._\n")
		return b.String()
	}
	b.WriteString("| Nombre | Teléfono | Correo | Etiqueta | Empresa |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, c := range items {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			mdCell(c.Nombre), mdCell(c.Telefono), mdCell(c.Correo), mdCell(c.Etiqueta), mdCell(c.Empresa))
	}
	return b.String()
}

func mdCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// draftFlags binds one string flag per contact field.
type draftFlags map[string]*string

func bindDraftFlags(cmd *cobra.Command) draftFlags {
	flags := draftFlags{}
	for _, f := range fieldOrder {
		flags[f] = cmd.Flags().String(f, "", "Contact "+f)
	}
	return flags
}

// apply copies the flags the user set onto d.
func (f draftFlags) apply(cmd *cobra.Command, d *contacts.Draft) {
	for _, name := range fieldOrder {
		if cmd.Flags().Changed(name) {
			d.Set(name, *f[name])
		}
	}
}

func validationError(errs contacts.FieldErrors) error {
	var msgs []string
	for _, name := range fieldOrder {
		if msg := errs[name]; msg != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", name, msg))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func newAddCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a contact",
		Args:  cobra.NoArgs,
	}
	flags := bindDraftFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		var draft contacts.Draft
		flags.apply(cmd, &draft)
		if errs := contacts.Validate(draft); !errs.OK() {
			return validationError(errs)
		}
		opts.initStderrLogger()
		ctrl := agenda.NewController(logger.L, api.NewFromConfig(logger.L, opts.cfg.API))
		created, err := ctrl.Create(cmd.Context(), draft)
		if err != nil {
			return userError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Contacto creado: %s (%s)\n", created.Nombre, created.ID)
		return nil
	}
	return cmd
}

func newEditCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a contact; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
	}
	flags := bindDraftFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctrl, err := opts.newController(cmd.Context())
		if err != nil {
			return err
		}
		if !ctrl.EditByID(args[0]) {
			return fmt.Errorf("contacto %q no encontrado", args[0])
		}
		draft := ctrl.State().EditTarget.Draft()
		flags.apply(cmd, &draft)
		if errs := contacts.Validate(draft); !errs.OK() {
			return validationError(errs)
		}
		updated, err := ctrl.Update(cmd.Context(), draft)
		if err != nil {
			return userError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Contacto actualizado: %s (%s)\n", updated.Nombre, updated.ID)
		return nil
	}
	return cmd
}

// uniqueIDs drops repeated ids while keeping first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func newRemoveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete contacts by id",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.initStderrLogger()
			ctrl := agenda.NewController(logger.L, api.NewFromConfig(logger.L, opts.cfg.API))
			for _, id := range uniqueIDs(args) {
				if err := ctrl.Delete(cmd.Context(), id); err != nil {
					return userError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Contacto eliminado: %s\n", id)
			}
			return nil
		},
	}
}
