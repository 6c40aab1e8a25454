// Package bootstrap builds the application runtime container. It binds
// the base path and environment, resolves the named filesystem paths,
// loads the environment's configuration document and registers the
// feature service providers, in that order.
//
// Usage:
//
//	app, err := bootstrap.NewApp(basePath, config.Production, bootstrap.DefaultProviders()...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close()
//
// Any failure along the way aborts the whole bootstrap: no partially
// initialized container ever escapes.
package bootstrap
