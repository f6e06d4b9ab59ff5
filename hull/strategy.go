package hull

import (
	"fmt"

	"github.com/pkg/errors"
)

type Strategy int

const (
	QuickHull Strategy = iota
	GrahamScan
	Incremental
)

var strategyNames = map[Strategy]string{
	QuickHull:   "quickhull",
	GrahamScan:  "graham",
	Incremental: "incremental",
}

// Names accepted by ParseStrategy, in declaration order.
func StrategyNames() []string {
	return []string{"quickhull", "graham", "incremental"}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	for strategy, strategyName := range strategyNames {
		if strategyName == name {
			return strategy, nil
		}
	}
	return 0, errors.Errorf("unknown hull strategy %q", name)
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
