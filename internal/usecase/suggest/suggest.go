package usecase_suggest

import (
	"github.com/kkcodebase/movie-mood-predictor/internal/catalog"
)

type Recommender interface {
	ByMood(mood string) []catalog.Entry
}

type Usecase struct {
	recommender Recommender
}

func New(recommender Recommender) *Usecase {
	return &Usecase{
		recommender: recommender,
	}
}

func (u *Usecase) ByMood(mood string) []catalog.Entry {
	return u.recommender.ByMood(mood)
}
