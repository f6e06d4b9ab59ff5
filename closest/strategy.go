package closest

import (
	"fmt"

	"github.com/pkg/errors"
)

type Strategy int

const (
	LineSweep Strategy = iota
	BruteForce
	DivideAndConquer
)

var strategyNames = map[Strategy]string{
	LineSweep:        "sweep",
	BruteForce:       "brute",
	DivideAndConquer: "divide",
}

// Names accepted by ParseStrategy, in declaration order.
func StrategyNames() []string {
	return []string{"sweep", "brute", "divide"}
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
	return 0, errors.Errorf("unknown closest pair strategy %q", name)
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
