package session

import (
	"testing"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions(n int) []model.QuizQuestion {
	qs := make([]model.QuizQuestion, n)
	for i := range qs {
		qs[i] = model.QuizQuestion{
			Question:      "Pergunta",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % 4,
		}
	}
	return qs
}

func TestQuizConfigure(t *testing.T) {
	q := NewQuiz()
	assert.ErrorIs(t, q.Configure("Matemática", "Funções", 4), util.ErrInvalidInput)
	assert.ErrorIs(t, q.Configure("Matemática", "Funções", 21), util.ErrInvalidInput)
	assert.ErrorIs(t, q.Configure("", "Funções", 10), util.ErrInvalidInput)

	require.NoError(t, q.Configure("Matemática", "Funções", 0))
	assert.Equal(t, DefaultCount, q.Count)
}

func TestQuizStartEmptyStaysInSetup(t *testing.T) {
	q := NewQuiz()
	require.NoError(t, q.Configure("História", "Brasil Colônia", 5))

	err := q.Start(nil)
	assert.ErrorIs(t, err, util.ErrEmptyResult)
	assert.Equal(t, StateSetup, q.State)
}

func TestQuizFullRun(t *testing.T) {
	q := NewQuiz()
	require.NoError(t, q.Configure("Química", "Estequiometria", 5))
	require.NoError(t, q.Start(sampleQuestions(3)))
	assert.Equal(t, StateQuiz, q.State)

	// 未选择时不能确认
	assert.ErrorIs(t, q.Confirm(), util.ErrInvalidTransition)
	_, err := q.Next()
	assert.ErrorIs(t, err, util.ErrInvalidTransition)

	// 第 1 题答对
	require.NoError(t, q.Select(0))
	require.NoError(t, q.Confirm())
	// 确认后再选择被忽略
	require.NoError(t, q.Select(3))
	assert.Equal(t, 0, *q.Selected)
	done, err := q.Next()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Nil(t, q.Selected)
	assert.False(t, q.Confirmed)

	// 第 2 题答错
	require.NoError(t, q.Select(3))
	require.NoError(t, q.Confirm())
	done, _ = q.Next()
	assert.False(t, done)

	// 第 3 题答对
	assert.ErrorIs(t, q.Select(4), util.ErrInvalidInput)
	require.NoError(t, q.Select(2))
	require.NoError(t, q.Confirm())
	done, err = q.Next()
	require.NoError(t, err)
	assert.True(t, done)

	assert.Equal(t, StateResults, q.State)
	assert.Equal(t, 2, q.Score)
	assert.Equal(t, []int{0, 3, 2}, q.Answers)
	assert.Equal(t, 67, q.Percentage())

	entry := q.HistoryEntry(1700000000000)
	assert.Equal(t, model.QuizHistoryEntry{
		Discipline:     "Química",
		Topic:          "Estequiometria",
		Score:          2,
		TotalQuestions: 3,
		Timestamp:      1700000000000,
	}, entry)

	assert.ErrorIs(t, q.Select(1), util.ErrInvalidTransition)
}

func TestQuizRestartClearsFields(t *testing.T) {
	q := NewQuiz()
	require.NoError(t, q.Configure("Física", "Cinemática", 7))
	require.NoError(t, q.Start(sampleQuestions(2)))
	require.NoError(t, q.Select(0))
	require.NoError(t, q.Confirm())

	q.Restart()
	assert.Equal(t, NewQuiz(), q)
	assert.Equal(t, StateSetup, q.State)
	assert.Empty(t, q.Discipline)
	assert.Empty(t, q.Topic)
	assert.Equal(t, 10, q.Count)
	assert.Zero(t, q.Score)
	assert.Nil(t, q.Selected)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 100, Percentage(5, 5))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 50, Percentage(1, 2))
}

func TestQuizValid(t *testing.T) {
	cases := []struct {
		name string
		q    Quiz
		want bool
	}{
		{"setup", *NewQuiz(), true},
		{"quiz sem questões", Quiz{State: StateQuiz}, false},
		{"índice além do fim", Quiz{State: StateQuiz, Current: 3, Questions: sampleQuestions(3)}, false},
		{"índice negativo", Quiz{State: StateQuiz, Current: -1, Questions: sampleQuestions(3)}, false},
		{"nota maior que o total", Quiz{State: StateResults, Score: 4, Questions: sampleQuestions(3)}, false},
		{"estado desconhecido", Quiz{State: "pausado", Questions: sampleQuestions(3)}, false},
		{"quiz em andamento", Quiz{State: StateQuiz, Current: 2, Questions: sampleQuestions(3)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.q.Valid())
		})
	}
}

func TestQuizSelectOutOfRangeDoesNotPanic(t *testing.T) {
	q := &Quiz{State: StateQuiz, Current: 1, Questions: sampleQuestions(1)}
	assert.ErrorIs(t, q.Select(0), util.ErrInvalidTransition)

	zero := 0
	q.Selected = &zero
	assert.ErrorIs(t, q.Confirm(), util.ErrInvalidTransition)
	assert.False(t, q.Confirmed)
}
