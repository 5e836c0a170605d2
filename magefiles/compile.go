package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"

	"fastcat.org/go/workshop/magefiles/mgx"
	"fastcat.org/go/workshop/magefiles/shx"
)

func Compile(ctx context.Context) error {
	fmt.Println("Compile: go build")
	return shx.Run(ctx, "go", "build", "-v", "./...")
}

type Build mg.Namespace

// Build static release binaries for each app, suitable for a scratch image
func (Build) Release(ctx context.Context) error {
	apps, err := mgx.Apps()
	if err != nil {
		return err
	}
	deps := make([]any, 0, len(apps))
	for _, app := range apps {
		deps = append(deps, mg.F(Build{}.release, "./apps/"+app, "./bin/"+app))
	}
	mg.CtxDeps(ctx, deps...)
	return nil
}

// Build debug binaries for each app
func (Build) Debug(ctx context.Context) error {
	apps, err := mgx.Apps()
	if err != nil {
		return err
	}
	deps := make([]any, 0, len(apps))
	for _, app := range apps {
		deps = append(deps, mg.F(Build{}.debug, "./apps/"+app, "./bin/"+app+".debug"))
	}
	mg.CtxDeps(ctx, deps...)
	return nil
}

func (Build) debug(ctx context.Context, pkg, name string) error {
	fmt.Printf("Build %s debug binary\n", filepath.Base(pkg))
	return shx.Cmd(
		ctx,
		"go", "build", "-gcflags=all=-N -l", "-v", "-o", name, pkg,
	).Run()
}

func (Build) release(ctx context.Context, pkg, name string) error {
	fmt.Printf("Build %s release binary\n", filepath.Base(pkg))
	return shx.Cmd(
		ctx,
		"go", "build", "-trimpath", "-ldflags=-s -w", "-v", "-o", name, pkg,
	).With(
		shx.WithEnv(map[string]string{
			"CGO_ENABLED": "0",
		}),
	).Run()
}
