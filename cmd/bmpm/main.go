// Command bmpm is a small demonstration CLI over the core encode/detect/
// dmSoundex operations. It loads rule data from a directory tree laid out
// as Data/<NameTypeDir>/<prefix>_<lang>.json under the -data directory, or
// under the current directory if none is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/beidermorse/bmpm/bmpm"
	"github.com/beidermorse/bmpm/langdata"
	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/normalize"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "bmpm:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: bmpm <encode|detect|dmsoundex> [flags] NAME")
	}

	switch args[0] {
	case "encode":
		return runEncode(args[1:])
	case "detect":
		return runDetect(args[1:])
	case "dmsoundex":
		return runDMSoundex(args[1:])
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func nameTypeFlag(fs *flag.FlagSet) *string {
	return fs.String("nametype", "generic", "generic, ashkenazic, or sephardic")
}

func parseNameType(s string) (language.NameType, error) {
	switch s {
	case "generic":
		return language.Generic, nil
	case "ashkenazic":
		return language.Ashkenazic, nil
	case "sephardic":
		return language.Sephardic, nil
	default:
		return 0, fmt.Errorf("unknown name-type %q", s)
	}
}

func newEncoder(dataDir string) *bmpm.Encoder {
	var store bmpm.Store
	if dataDir != "" {
		store = &bmpm.FSStore{FS: os.DirFS(dataDir)}
	} else {
		store = &bmpm.FSStore{FS: os.DirFS(".")}
	}
	return bmpm.New(store, normalize.DefaultPolicy, nil)
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	nt := nameTypeFlag(fs)
	exact := fs.Bool("exact", false, "use Exact accuracy instead of Approximate")
	dataDir := fs.String("data", "", "directory holding the Data/<NameTypeDir> rule tree")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: bmpm encode [-nametype T] [-exact] [-data DIR] NAME")
	}

	nameType, err := parseNameType(*nt)
	if err != nil {
		return err
	}
	accuracy := bmpm.Approximate
	if *exact {
		accuracy = bmpm.Exact
	}

	enc := newEncoder(*dataDir)
	out, err := enc.Encode(fs.Arg(0), nameType, accuracy, nil)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	nt := nameTypeFlag(fs)
	dataDir := fs.String("data", "", "directory holding the Data/<NameTypeDir> rule tree")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: bmpm detect [-nametype T] [-data DIR] NAME")
	}

	nameType, err := parseNameType(*nt)
	if err != nil {
		return err
	}

	enc := newEncoder(*dataDir)
	mask, err := enc.Detect(fs.Arg(0), nameType)
	if err != nil {
		return err
	}
	for _, lang := range langdata.Catalog(nameType).Decode(mask) {
		fmt.Println(lang.Name)
	}
	return nil
}

func runDMSoundex(args []string) error {
	fs := flag.NewFlagSet("dmsoundex", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: bmpm dmsoundex NAME")
	}

	enc := newEncoder("")
	fmt.Println(enc.DMSoundex(fs.Arg(0)))
	return nil
}
