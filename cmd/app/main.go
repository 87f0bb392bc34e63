package main

import (
	"github.com/kkcodebase/movie-mood-predictor/internal/app"
	"github.com/kkcodebase/movie-mood-predictor/internal/config"
)

func main() {
	app.Go(config.Load())
}
