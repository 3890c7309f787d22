package main

import (
	"fmt"
	"io"

	"github.com/XenFolio/cv-ai/internal/richtext"
	"github.com/XenFolio/cv-ai/internal/types"
	"github.com/spf13/cobra"
)

var mapOffsetCmd = &cobra.Command{
	Use:   "map-offset",
	Short: "Map a plain-text offset or span to its position in rich text",
	Long:  "Map a character offset of the plain text to the matching character index in the rich (HTML) text. With --end, the span [offset, end) is mapped instead.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var end *int
		if cmd.Flags().Changed("end") {
			end = &mapEnd
		}
		return runMapOffset(cmd.OutOrStdout(), mapPlainFile, mapRichFile, mapOffset, end)
	},
}

var (
	mapPlainFile string
	mapRichFile  string
	mapOffset    int
	mapEnd       int
)

// OffsetResult is the JSON printed by map-offset
type OffsetResult struct {
	Offset int         `json:"offset"`
	Mapped int         `json:"mapped"`
	Span   *types.Span `json:"span,omitempty"`
}

func init() {
	mapOffsetCmd.Flags().StringVar(&mapPlainFile, "plain", "", "Path to the plain text")
	mapOffsetCmd.Flags().StringVar(&mapRichFile, "rich", "", "Path to the rich text")
	mapOffsetCmd.Flags().IntVar(&mapOffset, "offset", 0, "Plain-text character offset")
	mapOffsetCmd.Flags().IntVar(&mapEnd, "end", 0, "Exclusive end of a plain-text span")
	_ = mapOffsetCmd.MarkFlagRequired("rich")

	rootCmd.AddCommand(mapOffsetCmd)
}

// runMapOffset maps offset, and the span [offset, *end) when end is set. Without a plain
// file the plain text is derived from the rich text.
func runMapOffset(w io.Writer, plainPath, richPath string, offset int, end *int) error {
	rich, err := readInput(richPath)
	if err != nil {
		return err
	}

	plain := richtext.PlainText(rich)
	if plainPath != "" {
		if plain, err = readInput(plainPath); err != nil {
			return err
		}
	}

	result := OffsetResult{
		Offset: offset,
		Mapped: richtext.MapOffset(plain, rich, offset),
	}

	if end != nil {
		if *end < offset {
			return fmt.Errorf("--end %d is before --offset %d", *end, offset)
		}
		span := richtext.MapSpan(plain, rich, types.Span{Start: offset, End: *end})
		result.Span = &span
	}

	return writeJSON(w, "", result)
}
