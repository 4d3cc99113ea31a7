package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/helpers/seedhelper"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/helpers/syscfghelper"
	"github.com/WangWilly/xGuild/pkgs/serverpkg/server"
	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"
)

func main() {
	println("xGuild - server sidebar")

	////////////////////////////////////////////////////////////////////////////
	// Command Line Arguments Setup
	////////////////////////////////////////////////////////////////////////////
	var confPath string
	var isDebug bool
	var seed bool

	flag.StringVar(&confPath, "config", syscfghelper.DEFAULT_CONF_FILE, "path of the yaml config")
	flag.BoolVar(&isDebug, "debug", false, "display debug message")
	flag.BoolVar(&seed, "seed", false, "create a demo server when the database is empty")
	flag.Parse()

	helper, err := syscfghelper.New(syscfghelper.CliParams{
		IsDebug:    isDebug,
		ConfigPath: confPath,
	})
	if err != nil {
		log.Fatalln("failed to init:", err)
	}
	defer helper.Close()
	conf := helper.GetConfig()

	////////////////////////////////////////////////////////////////////////////

	db, err := helper.GetDB()
	if err != nil {
		log.Fatalln("failed to open database:", err)
	}

	if seed {
		demo, err := seedhelper.Seed(context.Background(), db)
		switch {
		case errors.Is(err, seedhelper.ErrAlreadySeeded):
			log.Infoln("demo data already present")
		case err != nil:
			log.Fatalln("failed to seed demo data:", err)
		default:
			log.Infof(
				"demo server %s, sign in as %s",
				color.FgLightBlue.Render(demo.Server.Id),
				color.FgLightGreen.Render(demo.Owner.Id),
			)
		}
	}

	////////////////////////////////////////////////////////////////////////////

	srv, err := server.NewServerWithConfig(db, conf.Port)
	if err != nil {
		log.Fatalln("failed to create server:", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Infoln("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warnln("failed to shut down:", err)
		}
	}()

	////////////////////////////////////////////////////////////////////////////

	log.Infoln("open", color.FgLightBlue.Render("http://localhost:"+conf.Port), "to view the sidebar")
	if err := srv.Start(); err != nil {
		log.Fatalln("server failed:", err)
	}
}
