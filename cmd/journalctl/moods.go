package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/abhishek622/journalMin/pkg/model"
)

func printMoods(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tSCORE\tPROMPT")
	for _, m := range model.MoodList() {
		fmt.Fprintf(tw, "%s\t%s %s\t%d\t%s\n", m.ID, m.Emoji, m.Label, m.Score, m.Prompt)
	}
	return tw.Flush()
}
