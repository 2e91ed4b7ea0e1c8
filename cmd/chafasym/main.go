// chafasym - inspect and query terminal symbol selections
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/tliron/commonlog"

	"github.com/mikelolasagasti/chafa/config"
	"github.com/mikelolasagasti/chafa/symbols"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	selFlag := flag.String("symbols", "", "Symbol selector or preset name (e.g. 'block,border' or '+quad-dot')")
	configDir := flag.String("config", "", "Directory to search for chafa.toml (default: walk up from .)")
	checkFlag := flag.String("check", "", "Comma-separated codepoints or characters to test for membership")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chafasym [options]\n\n")
		fmt.Fprintf(os.Stderr, "Lists or queries the symbol selection described by a selector expression.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  chafasym -symbols block,border          # List block and border symbols\n")
		fmt.Fprintf(os.Stderr, "  chafasym -symbols all-braille           # Everything except Braille\n")
		fmt.Fprintf(os.Stderr, "  chafasym -symbols fine                  # Use a chafa.toml preset\n")
		fmt.Fprintf(os.Stderr, "  chafasym -symbols quad -check U+2596,X  # Test membership, exit 1 on a miss\n")
	}
	flag.Parse()

	if *verbose {
		commonlog.Configure(1, nil)
	} else {
		commonlog.Configure(0, nil)
	}
	log := commonlog.GetLogger("chafasym")

	startDir := *configDir
	if startDir == "" {
		startDir = "."
	}
	cfg, err := config.FindAndLoad(startDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg != nil {
		log.Debugf("loaded chafa.toml from %s", cfg.Dir)
	}

	m := symbols.NewSymbolMap()
	defer m.Unref()

	selector := cfg.Resolve(*selFlag)
	if selector == "" {
		log.Debugf("no selector configured, listing the full universe")
		m.AddByTags(symbols.TagAll)
	} else if err := m.ApplySelectors(selector); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *checkFlag != "" {
		runes, err := parseCheckList(*checkFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		missing := 0
		for _, r := range runes {
			if m.HasSymbol(r) {
				fmt.Printf("U+%04X %s: selected\n", r, string(r))
			} else {
				fmt.Printf("U+%04X %s: not selected\n", r, string(r))
				missing++
			}
		}
		if missing > 0 {
			os.Exit(1)
		}
		return
	}

	syms := m.Symbols()
	for _, sym := range syms {
		fmt.Printf("U+%04X  %s  %s\n", sym.Char, runewidth.FillRight(string(sym.Char), 2), sym.Tags)
	}
	log.Infof("%d symbols selected", len(syms))
}

// parseCheckList parses the -check argument: a comma-separated list of
// codepoints ("U+2588", "0x2502", "9618") or literal characters.
func parseCheckList(s string) ([]rune, error) {
	var runes []rune
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		r, err := parseCheckItem(item)
		if err != nil {
			return nil, err
		}
		runes = append(runes, r)
	}
	return runes, nil
}

func parseCheckItem(item string) (rune, error) {
	if len(item) > 2 && (strings.HasPrefix(item, "U+") || strings.HasPrefix(item, "u+")) {
		v, err := strconv.ParseUint(item[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid codepoint %q: %w", item, err)
		}
		return rune(v), nil
	}
	if v, err := strconv.ParseUint(item, 0, 32); err == nil {
		return rune(v), nil
	}
	runes := []rune(item)
	if len(runes) != 1 {
		return 0, fmt.Errorf("cannot interpret %q as a codepoint or single character", item)
	}
	return runes[0], nil
}
