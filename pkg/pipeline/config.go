package pipeline

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flowlane/pkg/errors"
)

// LoadConfig reads pipeline options from a TOML file. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
//
//	width = 320
//	radius = 4
//	palette = ["#0099CC", "#9933CC"]
//	formats = ["svg", "png"]
func LoadConfig(path string) (Options, error) {
	var opts Options
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		sort.Strings(names)
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(names, ", "))
	}
	return opts, nil
}
