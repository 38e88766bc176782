package session

import (
	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"
)

const (
	FlashcardMinCount = 5
	FlashcardMaxCount = 25
)

// FlashcardDeck 闪卡复习：setup -> review -> results
type FlashcardDeck struct {
	State      State             `json:"state"`
	Discipline string            `json:"discipline"`
	Topic      string            `json:"topic"`
	Count      int               `json:"count"`
	Cards      []model.Flashcard `json:"cards"`
	Current    int               `json:"current"`
	Flipped    bool              `json:"flipped"`
	Correct    int               `json:"correct"`
	Incorrect  int               `json:"incorrect"`
}

func NewFlashcardDeck() *FlashcardDeck {
	d := &FlashcardDeck{}
	d.Restart()
	return d
}

func (d *FlashcardDeck) Configure(discipline, topic string, count int) error {
	if d.State != StateSetup {
		return util.ErrInvalidTransition
	}
	if count == 0 {
		count = DefaultCount
	}
	if discipline == "" || topic == "" || count < FlashcardMinCount || count > FlashcardMaxCount {
		return util.ErrInvalidInput
	}
	d.Discipline = discipline
	d.Topic = topic
	d.Count = count
	return nil
}

func (d *FlashcardDeck) Start(cards []model.Flashcard) error {
	if d.State != StateSetup {
		return util.ErrInvalidTransition
	}
	if len(cards) == 0 {
		return util.ErrEmptyResult
	}
	d.Cards = cards
	d.Current = 0
	d.Flipped = false
	d.Correct = 0
	d.Incorrect = 0
	d.State = StateReview
	return nil
}

// Valid setup 以外的状态必须指向一张存在的卡片
func (d *FlashcardDeck) Valid() bool {
	switch d.State {
	case StateSetup:
		return true
	case StateReview, StateResults:
		return d.Current >= 0 && d.Current < len(d.Cards)
	default:
		return false
	}
}

func (d *FlashcardDeck) Flip() error {
	if d.State != StateReview {
		return util.ErrInvalidTransition
	}
	d.Flipped = !d.Flipped
	return nil
}

// Evaluate 只能在翻面后自评；最后一张之后进入 results 并返回 true
func (d *FlashcardDeck) Evaluate(correct bool) (bool, error) {
	if d.State != StateReview || !d.Flipped || !d.Valid() {
		return false, util.ErrInvalidTransition
	}
	if correct {
		d.Correct++
	} else {
		d.Incorrect++
	}
	d.Flipped = false
	if d.Current+1 < len(d.Cards) {
		d.Current++
		return false, nil
	}
	d.State = StateResults
	return true, nil
}

func (d *FlashcardDeck) Percentage() int {
	return Percentage(d.Correct, len(d.Cards))
}

func (d *FlashcardDeck) Restart() {
	*d = FlashcardDeck{
		State: StateSetup,
		Count: DefaultCount,
		Cards: []model.Flashcard{},
	}
}
