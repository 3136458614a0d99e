package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/keymap"
)

// KeysCmd prints the key map the overlay would show
type KeysCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`

	out io.Writer `kong:"-"`
}

type keyJSON struct {
	Description string `json:"description"`
	Key         string `json:"key"`
	Title       string `json:"title"`
}

type keyMapJSON struct {
	Bindings []keyJSON `json:"bindings"`
	Config   string    `json:"config"`
	Fallback bool      `json:"fallback"`
	Modifier string    `json:"modifier"`
}

// Run executes the keys command
func (k *KeysCmd) Run(cli *CLI) error {
	path := cli.ConfigPath()
	km := keymap.Load(path, cli.ParserOptions())

	if k.Format == "json" {
		return k.printJSON(path, km)
	}
	return k.printTable(path, km)
}

func (k *KeysCmd) writer() io.Writer {
	if k.out != nil {
		return k.out
	}
	return os.Stdout
}

func (k *KeysCmd) printJSON(path string, km *domain.KeyMap) error {
	out := keyMapJSON{
		Bindings: make([]keyJSON, 0, km.Len()),
		Config:   path,
		Fallback: keymap.IsFallback(km),
		Modifier: km.Modifier,
	}
	for _, b := range km.Bindings() {
		out.Bindings = append(out.Bindings, keyJSON{
			Description: b.Description,
			Key:         b.Key.String(),
			Title:       b.Title,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(k.writer(), string(data))
	return nil
}

func (k *KeysCmd) printTable(path string, km *domain.KeyMap) error {
	out := k.writer()
	fmt.Fprintf(out, "Config: %s\n", path)
	fmt.Fprintf(out, "Modifier: %s\n", km.Modifier)
	if keymap.IsFallback(km) {
		fmt.Fprintln(out, "No annotated bindings found, showing built-in defaults")
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tTITLE\tDESCRIPTION")
	for _, b := range km.Bindings() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Key, b.Title, b.Description)
	}
	return w.Flush()
}
