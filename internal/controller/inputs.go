package controller

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/jsonfmt/internal/model"
	"github.com/olekukonko/tablewriter"
)

// RenderInputs writes the resolved input paths as a table. Paths below root
// are shown relative to it.
func RenderInputs(w io.Writer, root m.Path, paths []m.Path) {
	if len(paths) == 0 {
		_, _ = fmt.Fprintln(w, "no input files")

		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for i, path := range paths {
		table.Append([]string{fmt.Sprintf("%d", i+1), displayPath(root, path)})
	}

	table.Render()
	_, _ = fmt.Fprintf(w, "\n%d file(s)\n", len(paths))
}

func displayPath(root, path m.Path) string {
	if root == "" {
		return path.String()
	}

	rel, err := filepath.Rel(root.String(), path.String())
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path.String()
	}

	return rel
}
