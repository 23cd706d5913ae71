package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KlemensE/roslyn/internal/manifest"
	"github.com/KlemensE/roslyn/internal/store"
)

var (
	snapshotListFormat string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage the local document store backing rehydration snapshots",
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import <manifest>",
	Short: "Import documents from a manifest into the store",
	Args:  cobra.ExactArgs(1),
	Run:   runSnapshotImport,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents in the store",
	Run:   runSnapshotList,
}

func init() {
	snapshotListCmd.Flags().StringVar(&snapshotListFormat, "format", "human", "Output format (json, human)")
	snapshotCmd.AddCommand(snapshotImportCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshotImport(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg, "")

	m, err := manifest.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
		os.Exit(1)
	}

	docs, err := m.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving manifest: %v\n", err)
		os.Exit(1)
	}

	db, err := store.Open(rootFlag, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PutDocuments(docs); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing documents: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d documents into %s\n", len(docs), db.Path())
}

// DocumentCLI is one store entry in list output
type DocumentCLI struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

func runSnapshotList(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg, snapshotListFormat)

	db, err := store.Open(rootFlag, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	docs, err := db.ListDocuments()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing documents: %v\n", err)
		os.Exit(1)
	}

	if snapshotListFormat == "json" {
		out := make([]DocumentCLI, len(docs))
		for i, doc := range docs {
			out[i] = DocumentCLI{ID: doc.ID.String(), Name: doc.Name, Path: doc.Path}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	for _, doc := range docs {
		fmt.Printf("%s  %s\n", doc.ID, doc.Path)
	}
	fmt.Printf("(%d documents)\n", len(docs))
}
