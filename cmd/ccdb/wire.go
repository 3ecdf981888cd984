//go:build wireinject

package main

import (
	"io"

	"github.com/google/wire"
	"github.com/hayeah/goo"

	"github.com/hayeah/ccdb/ls"
	"github.com/hayeah/ccdb/namespace/sqlite"
)

var loggerSet = wire.NewSet(
	ProvideGooConfig,
	ProvideLogger,
)

func BuildLister(args *Args, out io.Writer) (*ls.Lister, func(), error) {
	wire.Build(
		loggerSet,
		ProvideNamespace,
		ProvideTheme,
		ProvideLister,
	)
	return nil, nil, nil
}

func BuildStore(args *Args) (*sqlite.Store, func(), error) {
	wire.Build(
		loggerSet,
		ProvideDB,
		goo.ProvideDBMigrator,
		ProvideStore,
	)
	return nil, nil, nil
}
