package main

import (
	"context"

	"github.com/magefile/mage/mg"
)

var (
	Default = All
	Aliases = map[string]any{
		"lint": Lint,
		"fmt":  Format,
	}
)

func All(ctx context.Context) error {
	mg.CtxDeps(ctx, Lint, Compile, Test)
	return nil
}
