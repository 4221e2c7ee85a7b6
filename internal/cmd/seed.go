package cmd

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/dendrascience/comics/archive"
	"github.com/dendrascience/comics/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the comics CLI.
// It writes sample comics for trying out the other commands.
func NewSeedCmd(a *app) *cobra.Command {
	var (
		outputPath string
		count      int
		nested     bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate sample comic archives",
		Long: `Generate sample comic archives for trying out comics commands.

Each comic holds a few chapter folders of placeholder page images with
unordered, scanner-style names, and a credits.txt file. Titles carry
bracketed noise for rename --cleanup, and every other comic is written as a
plain ZIP for cbz to convert.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, a, outputPath, count, nested)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&count, "count", "c", 5, "Number of comics to generate")
	cmd.Flags().BoolVar(&nested, "nested", true, "Put pages in chapter folders")

	cmd.MarkFlagRequired("output")

	return cmd
}

func randInt(n int64) int {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

func runSeed(cmd *cobra.Command, a *app, outputPath string, count int, nested bool) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	width := util.PadWidth(count)
	for i := 1; i <= count; i++ {
		ext := archive.CanonicalExt
		if i%2 == 0 {
			ext = ".zip"
		}
		title := fmt.Sprintf("Sample Comic %s (%d) [seed]", util.PadIndex(i, width), 2000+randInt(25))
		dst := filepath.Join(outputPath, title+ext)

		if err := seedComic(dst, nested); err != nil {
			return err
		}
		a.logger.Debug("seeded", "path", dst)
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dst)
	}
	return nil
}

// seedComic lays out a comic in a scratch directory and packs it into dst.
func seedComic(dst string, nested bool) error {
	src, err := os.MkdirTemp("", "comics-seed-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(src)

	chapters := 1
	if nested {
		chapters = 1 + randInt(3)
	}
	for ch := 1; ch <= chapters; ch++ {
		dir := src
		if nested {
			dir = filepath.Join(src, fmt.Sprintf("Chapter %d", ch))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		pages := 3 + randInt(10)
		scan := randInt(0xFFFF)
		for p := 1; p <= pages; p++ {
			name := fmt.Sprintf("scan%04x_%d.jpg", scan, p)
			content := uuid.New().String() + "\n"
			if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
				return err
			}
		}
	}

	credits := fmt.Sprintf("scanned by %s\n", uuid.New().String())
	if err := os.WriteFile(filepath.Join(src, "credits.txt"), []byte(credits), 0o644); err != nil {
		return err
	}

	return archive.Compress(src, dst, true)
}
