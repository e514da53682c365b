// Command server runs the localization demo: a single page whose labels
// follow the locale resolved from the cookie, the Accept-Language header or
// the default.
package main

import (
	"context"
	"os"

	"golang.org/x/text/language"

	"github.com/MichailMastanov/localization-example/internal/greeter"
	"github.com/MichailMastanov/localization-example/internal/web"
	"github.com/MichailMastanov/localization-example/pkg/config"
	"github.com/MichailMastanov/localization-example/pkg/cookie"
	"github.com/MichailMastanov/localization-example/pkg/httpserver"
	"github.com/MichailMastanov/localization-example/pkg/i18n"
	"github.com/MichailMastanov/localization-example/pkg/logger"
	"github.com/MichailMastanov/localization-example/pkg/requestid"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var (
		appCfg    appConfig
		serverCfg httpserver.Config
		cookieCfg cookie.Config
		webCfg    web.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&serverCfg)
	config.MustLoad(&cookieCfg)
	config.MustLoad(&webCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment, "localization-demo"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	tags := make([]language.Tag, 0, len(webCfg.Locales))
	for _, locale := range webCfg.Locales {
		tag, err := language.Parse(locale)
		if err != nil {
			log.Error("invalid locale in SUPPORTED_LOCALES", logger.Locale(locale), logger.Error(err))
			os.Exit(1)
		}
		tags = append(tags, tag)
	}

	ctx := context.Background()

	translator, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(web.TranslationsFS(), "translations"),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		log.Error("failed to load translations", logger.Error(err))
		os.Exit(1)
	}

	resolver, err := i18n.NewResolver(tags...)
	if err != nil {
		log.Error("failed to build locale resolver", logger.Error(err))
		os.Exit(1)
	}

	h := web.New(
		webCfg,
		translator,
		resolver,
		cookie.NewFromConfig(cookieCfg),
		greeter.New(translator),
		log,
	)

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))

	log.Info("starting server",
		logger.Component("server"),
		"addr", serverCfg.Addr,
		"locales", webCfg.Locales,
	)
	if err := srv.Run(ctx, h.Router()); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
