// Package bootstrap populates the process-wide registrars with the
// built-in algorithms and engine implementation every tankarena binary
// ships with. A real plugin loader would call the same registrar
// methods from code loaded at runtime (see internal/registry's doc
// comment); this package plays that role for the algorithms compiled
// directly into the binary.
package bootstrap

import (
	"github.com/ezynda3/tank-arena/internal/algo"
	"github.com/ezynda3/tank-arena/internal/contracts"
	"github.com/ezynda3/tank-arena/internal/engine"
	"github.com/ezynda3/tank-arena/internal/registry"
)

// Algorithms returns a fresh AlgorithmRegistrar populated with every
// built-in algorithm, each registered atomically the way a plugin's
// load routine would: create the entry, set both factories, validate.
func Algorithms() (*registry.AlgorithmRegistrar, error) {
	r := &registry.AlgorithmRegistrar{}

	builtins := []struct {
		name      string
		player    contracts.PlayerFactory
		algorithm contracts.TankAlgorithmFactory
	}{
		{"Basic", algo.NewBasicPlayer, algo.NewBasicTankAlgorithm},
		{"Offensive", algo.NewOffensivePlayer, algo.NewOffensiveTankAlgorithm},
		{"DoNothing", algo.NewNoOpPlayer, algo.NewDoNothingTankAlgorithm},
		{"AlwaysShoot", algo.NewNoOpPlayer, algo.NewAlwaysShootTankAlgorithm},
		{"AlwaysMoveForward", algo.NewNoOpPlayer, algo.NewAlwaysMoveForwardTankAlgorithm},
		{"AlwaysMoveBackward", algo.NewNoOpPlayer, algo.NewAlwaysMoveBackwardTankAlgorithm},
	}

	for _, b := range builtins {
		r.CreateEntry(b.name)
		r.SetPlayerFactory(b.player)
		r.SetTankAlgorithmFactory(b.algorithm)
		if err := r.ValidateLast(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Engines returns a fresh EngineRegistrar populated with the single
// built-in engine implementation, named "default".
func Engines() (*registry.EngineRegistrar, error) {
	r := &registry.EngineRegistrar{}
	r.CreateEntry("default")
	r.SetFactory(func(verbose bool) *engine.Engine {
		return engine.New(0, 0, verbose, nil)
	})
	if err := r.ValidateLast(); err != nil {
		return nil, err
	}
	return r, nil
}
