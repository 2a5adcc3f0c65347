package main

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var jsonOut = jsoniter.ConfigCompatibleWithStandardLibrary

func printJSON(w io.Writer, v any) error {
	enc := jsonOut.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeImage writes img to path, or to stdout when path is empty or "-".
func writeImage(cmd *cobra.Command, path string, img []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(img)
		return err
	}
	return os.WriteFile(path, img, 0o644)
}
