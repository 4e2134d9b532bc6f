package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/greatbody/charsetdetect/detector"
	"github.com/greatbody/charsetdetect/internal/config"
	"github.com/greatbody/charsetdetect/internal/locale"
	"github.com/greatbody/charsetdetect/internal/transcoder"
	"github.com/greatbody/charsetdetect/internal/vfs"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to config file (.json or .yaml)")
	localeFlag := flag.String("locale", "", "Locale of the input text, e.g. pl_PL or el-GR")
	defaultEnc := flag.String("default", "", "Encoding reported when nothing matches")
	outDir := flag.String("out", "", "Write converted copies of the input files into this directory")
	toEnc := flag.String("to", "", "Encoding of the copies written with -out (default UTF-8)")
	verbose := flag.Bool("v", false, "Print the score of every candidate")
	listEnc := flag.Bool("encodings", false, "List single-byte encodings and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] path...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listEnc {
		for _, enc := range charmap.All {
			if cm, ok := enc.(*charmap.Charmap); ok {
				fmt.Println(cm.String())
			}
		}
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Could not load config: %v", err)
		}
		cfg = config.DefaultConfig()
	}
	if *defaultEnc != "" {
		if _, err := detector.Lookup(*defaultEnc); err != nil {
			log.Fatalf("Invalid -default: %v", err)
		}
		cfg.DefaultEncoding = *defaultEnc
	}
	if *toEnc != "" {
		if _, err := detector.Lookup(*toEnc); err != nil {
			log.Fatalf("Invalid -to: %v", err)
		}
	}

	d := cfg.NewDetector()
	loc, err := resolveLocale(*localeFlag, cfg.Locale, d.Registry())
	if err != nil {
		log.Fatalf("%v", err)
	}

	var cp *copier
	if *outDir != "" {
		cp = newCopier(*outDir, *toEnc)
	}

	filter := vfs.NewFilter(cfg.AllowedExtensions, cfg.MaxFileSize)
	failed := false
	for _, root := range flag.Args() {
		err := vfs.Walk(root, filter, func(path string) error {
			if err := processFile(os.Stdout, d, loc, root, path, cp, *verbose); err != nil {
				log.Printf("%s: %v", path, err)
				failed = true
			}
			return nil
		})
		if err != nil {
			log.Printf("%v", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// resolveLocale prefers the flag, then the config, then the system locale,
// and settles on Polish when none of them is given.
func resolveLocale(flagValue, cfgValue string, reg *detector.Registry) (string, error) {
	for _, v := range []string{flagValue, cfgValue} {
		if v == "" {
			continue
		}
		if reg.IsRegistered(v) {
			return v, nil
		}
		n, err := locale.Normalize(v)
		if err != nil {
			return "", errors.Wrap(err, "invalid locale")
		}
		if !reg.IsRegistered(n) {
			return "", errors.Errorf("locale %s is not registered (known: %v)", n, reg.Locales())
		}
		return n, nil
	}

	if sys, err := locale.System(); err == nil && reg.IsRegistered(sys) {
		return sys, nil
	}
	return detector.PolishLocale, nil
}

// copier writes converted copies below dir, mirroring each file's path
// relative to the root it was found under.
type copier struct {
	dir     string
	to      string
	written map[string]string // output path -> source path
}

func newCopier(dir, to string) *copier {
	return &copier{dir: dir, to: to, written: make(map[string]string)}
}

func (c *copier) target(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		rel = filepath.Base(path)
	}
	out := filepath.Join(c.dir, rel)
	if prev, ok := c.written[out]; ok {
		return "", errors.Errorf("output %s already written for %s", out, prev)
	}
	c.written[out] = path
	return out, nil
}

func (c *copier) copy(root, path string, data []byte, enc string) error {
	out, err := c.target(root, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}

	if c.to != "" {
		utf8Data, err := transcoder.ToUTF8(data, enc)
		if err != nil {
			return err
		}
		converted, err := transcoder.FromUTF8(utf8Data, c.to)
		if err != nil {
			return err
		}
		return os.WriteFile(out, converted, 0o644)
	}

	r, err := transcoder.NewReader(bytes.NewReader(data), enc)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", out)
	}
	return f.Close()
}

func processFile(w io.Writer, d *detector.Detector, loc, root, path string, cp *copier, verbose bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	enc, err := d.Detect(loc, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", path, enc)

	if verbose {
		scores, err := d.Scores(loc, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  locale %s, diacritics %q, default %s\n",
			loc, d.Registry().Matcher(loc).Chars(), d.DefaultEncoding())
		for _, s := range scores {
			if s.Err != nil {
				fmt.Fprintf(w, "  %-14s failed: %v\n", s.Encoding, s.Err)
				continue
			}
			fmt.Fprintf(w, "  %-14s %d\n", s.Encoding, s.Count)
		}
	}

	if cp == nil {
		return nil
	}
	return cp.copy(root, path, data, enc)
}
