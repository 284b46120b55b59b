package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// applyConfig reads the YAML file at path and sets every key as the flag of
// the same name on cmd, unless that flag was given on the command line.
// Keys naming a flag of another subcommand are skipped; keys naming no flag
// at all are an error.
func applyConfig(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	values := map[string]interface{}{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "parsing config %s", path)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flags := cmd.Flags()
	for _, key := range keys {
		f := flags.Lookup(key)
		if f == nil {
			if !knownFlag(cmd.Root(), key) {
				return errors.Errorf("config %s: unknown key %q", path, key)
			}
			log.Debugf("config key %q does not apply to %q", key, cmd.Name())
			continue
		}
		if f.Changed {
			log.WithField("key", key).Debug("flag overrides config")
			continue
		}
		if err := flags.Set(key, fmt.Sprint(values[key])); err != nil {
			return errors.Wrapf(err, "config %s: key %q", path, key)
		}
	}
	return nil
}

// knownFlag reports whether any command under root defines name.
func knownFlag(root *cobra.Command, name string) bool {
	if root.Flags().Lookup(name) != nil || root.PersistentFlags().Lookup(name) != nil {
		return true
	}
	for _, c := range root.Commands() {
		if knownFlag(c, name) {
			return true
		}
	}
	return false
}
