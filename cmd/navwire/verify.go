package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KlemensE/roslyn/internal/config"
	"github.com/KlemensE/roslyn/internal/errors"
	"github.com/KlemensE/roslyn/internal/manifest"
	"github.com/KlemensE/roslyn/internal/nav"
	"github.com/KlemensE/roslyn/internal/store"
	"github.com/KlemensE/roslyn/internal/wire"
)

var (
	verifyIn       string
	verifyManifest string
	verifyFormat   string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Rehydrate a wire batch against a snapshot and report per-item outcome",
	Long: `Reads a JSON file containing dehydrated search result records, resolves
them against a document snapshot (from a manifest file if given, otherwise
from the document store), and reports success or failure per item.
Failures in one item never affect its siblings.`,
	Run: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyIn, "in", "", "Wire batch JSON file (required)")
	verifyCmd.Flags().StringVar(&verifyManifest, "manifest", "", "Document manifest to build the snapshot from")
	verifyCmd.Flags().StringVar(&verifyFormat, "format", "human", "Output format (json, human)")
	_ = verifyCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(verifyCmd)
}

// VerifyItemCLI describes the outcome for one batch entry
type VerifyItemCLI struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	OK    bool   `json:"ok"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

// VerifyResponseCLI is the complete verify report
type VerifyResponseCLI struct {
	Total    int             `json:"total"`
	Failed   int             `json:"failed"`
	Snapshot int             `json:"snapshotDocuments"`
	Items    []VerifyItemCLI `json:"items"`
}

func runVerify(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg, "")

	data, err := os.ReadFile(verifyIn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading batch file: %v\n", err)
		os.Exit(1)
	}

	var records []wire.SearchResultRecord
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing batch file: %v\n", err)
		os.Exit(1)
	}
	if cfg.Batch.MaxResults > 0 && len(records) > cfg.Batch.MaxResults {
		fmt.Fprintf(os.Stderr, "Batch has %d results, limit is %d\n",
			len(records), cfg.Batch.MaxResults)
		os.Exit(1)
	}

	snap, snapLen, err := loadSnapshot(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building snapshot: %v\n", err)
		os.Exit(1)
	}

	results, failures := wire.RehydrateSearchResults(records, snap)

	failed := make(map[int]error, len(failures))
	for _, f := range failures {
		failed[f.Index] = f.Err
	}

	report := VerifyResponseCLI{
		Total:    len(records),
		Failed:   len(failures),
		Snapshot: snapLen,
		Items:    make([]VerifyItemCLI, len(records)),
	}
	for i := range records {
		item := VerifyItemCLI{Index: i, Name: records[i].Name, OK: true}
		if err, ok := failed[i]; ok {
			item.OK = false
			item.Code = string(errors.CodeOf(err))
			item.Error = err.Error()
		} else {
			item.Name = results[i].Name
		}
		report.Items[i] = item
	}

	if verifyFormat == "json" {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("Rehydrated %d/%d results against %d documents\n",
			report.Total-report.Failed, report.Total, report.Snapshot)
		for _, item := range report.Items {
			if item.OK {
				fmt.Printf("  ok   %3d  %s\n", item.Index, item.Name)
			} else {
				fmt.Printf("  FAIL %3d  %s (%s)\n", item.Index, item.Error, item.Code)
			}
		}
	}

	if report.Failed > 0 {
		logger.Warn("Batch contained failed items", map[string]interface{}{
			"failed": report.Failed,
			"total":  report.Total,
		})
		os.Exit(1)
	}
}

// loadSnapshot builds the snapshot from the --manifest flag when given,
// otherwise from the document store.
func loadSnapshot(cfg *config.Config) (nav.Snapshot, int, error) {
	if verifyManifest != "" {
		m, err := manifest.Load(verifyManifest)
		if err != nil {
			return nil, 0, err
		}
		snap, err := m.Snapshot()
		if err != nil {
			return nil, 0, err
		}
		return snap, snap.Len(), nil
	}

	db, err := store.Open(rootFlag, newLogger(cfg, ""))
	if err != nil {
		return nil, 0, err
	}
	defer db.Close()

	snap, err := db.Snapshot()
	if err != nil {
		return nil, 0, err
	}
	return snap, snap.Len(), nil
}
