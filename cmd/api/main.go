package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// @title           Acervo API
// @version         1.0
// @description     CRUD de questões e filmes.
// @host            localhost:3000
// @BasePath        /

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("Falha ao executar comando")
		os.Exit(1)
	}
}
