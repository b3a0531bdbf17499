package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/HartBrook/moanote/internal/cache"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the written-article cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List cached articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			return listCache(cmd.OutOrStdout(), cache.New(s.paths), s)
		},
	})

	var all bool
	clearCmd := &cobra.Command{
		Use:   "clear [key]",
		Short: "Remove one cached article, or all with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			c := cache.New(s.paths)

			if all {
				n, err := c.ClearAll()
				if err != nil {
					return err
				}
				printSuccess("Removed %d cached articles", n)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("give a cache key or use --all")
			}

			key, err := resolveCacheKey(c, args[0])
			if err != nil {
				return err
			}
			if err := c.Clear(key); err != nil {
				return err
			}
			printSuccess("Removed cached article %s", key)
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&all, "all", false, "Remove every cached article")
	cmd.AddCommand(clearCmd)

	return cmd
}

func listCache(out io.Writer, c *cache.Cache, s *session) error {
	entries, err := c.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No cached articles.")
		return nil
	}

	ttl := s.cfg.Cache.TTLDuration()
	for _, m := range entries {
		age := m.Age()
		if m.IsStale(ttl) {
			age += " " + warning("(stale)")
		}
		fmt.Fprintf(out, "  %s  %-20s %5d chars  %s/%s  %s\n",
			info(m.ShortKey()), m.MainKeyword, m.CharCount, m.Provider, m.Model, dim(age))
	}
	fmt.Fprintf(out, "\n%s\n", dim(c.Dir()))
	return nil
}

// resolveCacheKey expands a key prefix, such as the short key shown by
// `cache list`, to a full key.
func resolveCacheKey(c *cache.Cache, prefix string) (string, error) {
	entries, err := c.List()
	if err != nil {
		return "", err
	}

	var match string
	for _, m := range entries {
		if strings.HasPrefix(m.Key, prefix) {
			if match != "" {
				return "", fmt.Errorf("cache key %q is ambiguous", prefix)
			}
			match = m.Key
		}
	}
	if match == "" {
		return "", fmt.Errorf("no cached article with key %q", prefix)
	}
	return match, nil
}
