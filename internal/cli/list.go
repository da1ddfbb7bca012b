package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"dualsub/internal/language"
	"dualsub/internal/video"
)

var listCmd = &cobra.Command{
	Use:   "list [video file]",
	Short: "List subtitle streams in a video file",
	Long: `List all subtitle streams embedded in a video file, with their
index, language tag, and codec.

Examples:
  dualsub list movie.mkv
  dualsub list --json movie.mkv`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("json", false, "Print streams as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	asJSON, _ := cmd.Flags().GetBool("json")

	processor := video.NewProcessor()
	streams, err := processor.ListStreams(cmd.Context(), videoPath)
	if err != nil {
		return describeError(err)
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(streams)
	}

	if len(streams) == 0 {
		fmt.Println("No subtitle streams found.")
		return nil
	}

	headers := []string{"Index", "Tag", "Language", "Codec", "Title"}
	rows := make([][]string, 0, len(streams))
	for _, stream := range streams {
		rows = append(rows, []string{
			strconv.Itoa(stream.Index),
			stream.Language,
			language.DisplayName(stream.Language),
			stream.Codec,
			stream.Title,
		})
	}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}

	fmt.Println(renderTable(headers, rows, aligns))
	return nil
}
