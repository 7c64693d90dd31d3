package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/gonzalop/duaqos"
	"github.com/gonzalop/duaqos/rmw"
)

type format string

const (
	formatTable format = "table"
	formatJSON  format = "json"
	formatYAML  format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(s); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

// encode writes v as JSON or YAML. It reports false for the table format,
// which each caller lays out itself.
func encode(w io.Writer, f format, v any) (bool, error) {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func depthCell(q rmw.Profile) any {
	if q.History == rmw.HistoryKeepLast {
		return q.Depth
	}
	return "-"
}

func renderEntries(w io.Writer, f format, entries []duaqos.Entry) error {
	if done, err := encode(w, f, entries); done {
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Class", "Category", "History", "Depth", "Reliability", "Durability", "Legacy"})
	for _, e := range entries {
		legacy := ""
		if e.Legacy {
			legacy = "yes"
		}
		tw.AppendRow(table.Row{e.Class, e.Category, e.Profile.History, depthCell(e.Profile), e.Profile.Reliability, e.Profile.Durability, legacy})
	}
	tw.Render()
	return nil
}

type profileView struct {
	Class    duaqos.Class    `json:"class" yaml:"class"`
	Category duaqos.Category `json:"category" yaml:"category"`
	Profile  rmw.Profile     `json:"profile" yaml:"profile"`
}

func renderProfile(w io.Writer, f format, class duaqos.Class, category duaqos.Category, q rmw.Profile) error {
	if done, err := encode(w, f, profileView{Class: class, Category: category, Profile: q}); done {
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Class", "Category", "History", "Depth", "Reliability", "Durability"})
	tw.AppendRow(table.Row{class, category, q.History, depthCell(q), q.Reliability, q.Durability})
	tw.Render()
	return nil
}

func renderAction(w io.Writer, f format, role string, opts any) error {
	if done, err := encode(w, f, opts); done {
		return err
	}

	var o rmw.ActionServerOptions
	switch v := opts.(type) {
	case rmw.ActionServerOptions:
		o = v
	case rmw.ActionClientOptions:
		o = rmw.ActionServerOptions(v)
	default:
		return fmt.Errorf("unsupported action options type %T", opts)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(fmt.Sprintf("action %s (allocator: %s)", role, o.Allocator.Name()))
	tw.AppendHeader(table.Row{"Channel", "History", "Depth", "Reliability", "Durability"})
	rows := []struct {
		name string
		q    rmw.Profile
	}{
		{"goal service", o.GoalServiceQoS},
		{"cancel service", o.CancelServiceQoS},
		{"result service", o.ResultServiceQoS},
		{"feedback topic", o.FeedbackTopicQoS},
		{"status topic", o.StatusTopicQoS},
	}
	for _, r := range rows {
		tw.AppendRow(table.Row{r.name, r.q.History, depthCell(r.q), r.q.Reliability, r.q.Durability})
	}
	tw.Render()
	return nil
}
