package render

import (
	"bufio"
	"fmt"
	"io"

	"termlife/internal/core"
)

// ClearScreen clears the terminal and homes the cursor.
const ClearScreen = "\x1b[2J\x1b[H"

// Printer renders a grid as text.
type Printer interface {
	Print(w io.Writer) error
}

// Frame writes one full tick: clear sequence, grid, status lines. Output is
// buffered and flushed once to keep the redraw in a single write burst.
func Frame(w io.Writer, grid Printer, st core.Status) error {
	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, ClearScreen); err != nil {
		return err
	}
	if err := grid.Print(bw); err != nil {
		return err
	}
	if err := WriteStatus(bw, st); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteStatus writes the run, generation and population lines.
func WriteStatus(w io.Writer, st core.Status) error {
	for _, line := range StatusLines(st) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// StatusLines formats the counters shown under the grid.
func StatusLines(st core.Status) []string {
	return []string{
		fmt.Sprintf("Runs: %d", st.Runs),
		fmt.Sprintf("Generation: %d", st.Generation),
		fmt.Sprintf("Total population: %d/%d", st.Population, st.MaxPopulation),
	}
}
