package main

import (
	"context"
	"fmt"

	"fastcat.org/go/workshop/magefiles/mgx"
	"fastcat.org/go/workshop/magefiles/shx"
)

func Lint(ctx context.Context) error {
	fmt.Println("Lint: golangci-lint")
	return shx.Cmd(ctx, mgx.FindGCI(), "run", "./...").
		With(
			// getting told the linter failed without seeing why is useless
			shx.WithOutput(),
		).
		Run()
}

func Format(ctx context.Context) error {
	fmt.Println("Format: golangci-lint")
	return shx.Run(ctx, mgx.FindGCI(), "fmt", "./...")
}

func Tidy(ctx context.Context) error {
	for _, dir := range []string{".", "magefiles"} {
		fmt.Printf("Tidy: %s\n", dir)
		if err := shx.Cmd(ctx, "go", "mod", "tidy", "-v").
			With(shx.WithCwd(dir)).
			Run(); err != nil {
			return fmt.Errorf("error tidying %s: %w", dir, err)
		}
	}
	return nil
}
