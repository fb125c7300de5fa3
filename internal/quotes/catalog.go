// Package quotes is the fixed quote catalog the app serves content from.
// The catalog is compiled in and never persisted.
package quotes

import (
	"math/rand/v2"

	"github.com/posilife/posilife/internal/model"
)

// Catalog serves quotes by agenda.
type Catalog struct {
	all []model.Quote
	rng *rand.Rand
}

func NewCatalog() *Catalog {
	return &Catalog{
		all: defaultQuotes(),
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// All returns the full catalog.
func (c *Catalog) All() []model.Quote {
	out := make([]model.Quote, len(c.all))
	copy(out, c.all)
	return out
}

// ForAgenda returns the quotes in the given agenda, in catalog order.
func (c *Catalog) ForAgenda(agenda model.Agenda) []model.Quote {
	var out []model.Quote
	for _, q := range c.all {
		if q.Category == agenda {
			out = append(out, q)
		}
	}
	return out
}

// Random returns a uniformly random quote from the whole catalog.
// ok is false only for an empty catalog.
func (c *Catalog) Random() (model.Quote, bool) {
	if len(c.all) == 0 {
		return model.Quote{}, false
	}
	return c.all[c.rng.IntN(len(c.all))], true
}

// RandomForAgenda returns a uniformly random quote from the agenda's pool.
// ok is false when the agenda has no quotes.
func (c *Catalog) RandomForAgenda(agenda model.Agenda) (model.Quote, bool) {
	pool := c.ForAgenda(agenda)
	if len(pool) == 0 {
		return model.Quote{}, false
	}
	return pool[c.rng.IntN(len(pool))], true
}

// ForToday returns up to n distinct quotes for the agenda, in random order.
func (c *Catalog) ForToday(agenda model.Agenda, n int) []model.Quote {
	pool := c.ForAgenda(agenda)
	c.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	if n < 0 {
		n = 0
	}
	return pool[:n]
}

func defaultQuotes() []model.Quote {
	return []model.Quote{
		// Study
		{Text: "Education is the most powerful weapon which you can use to change the world.", Author: "Nelson Mandela", Category: model.AgendaStudy},
		{Text: "The beautiful thing about learning is that no one can take it away from you.", Author: "B.B. King", Category: model.AgendaStudy},
		{Text: "Study hard what interests you the most in the most undisciplined, irreverent and original manner possible.", Author: "Richard Feynman", Category: model.AgendaStudy},
		{Text: "Learning never exhausts the mind.", Author: "Leonardo da Vinci", Category: model.AgendaStudy},
		{Text: "The expert in anything was once a beginner.", Author: "Helen Hayes", Category: model.AgendaStudy},

		// Job / career
		{Text: "Choose a job you love, and you will never have to work a day in your life.", Author: "Confucius", Category: model.AgendaJob},
		{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill", Category: model.AgendaJob},
		{Text: "Opportunities don't happen. You create them.", Author: "Chris Grosser", Category: model.AgendaJob},
		{Text: "Don't be afraid to give up the good to go for the great.", Author: "John D. Rockefeller", Category: model.AgendaJob},
		{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney", Category: model.AgendaJob},

		// Health
		{Text: "To keep the body in good health is a duty... otherwise we shall not be able to keep our mind strong and clear.", Author: "Buddha", Category: model.AgendaHealth},
		{Text: "Health is a state of complete harmony of the body, mind and spirit.", Author: "B.K.S. Iyengar", Category: model.AgendaHealth},
		{Text: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn", Category: model.AgendaHealth},
		{Text: "A healthy outside starts from the inside.", Author: "Robert Urich", Category: model.AgendaHealth},
		{Text: "The first wealth is health.", Author: "Ralph Waldo Emerson", Category: model.AgendaHealth},

		// Motivation
		{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Category: model.AgendaMotivation},
		{Text: "Life is what happens to you while you're busy making other plans.", Author: "John Lennon", Category: model.AgendaMotivation},
		{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt", Category: model.AgendaMotivation},
		{Text: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle", Category: model.AgendaMotivation},
		{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt", Category: model.AgendaMotivation},

		// Mindfulness
		{Text: "The present moment is the only time over which we have dominion.", Author: "Thích Nhất Hạnh", Category: model.AgendaMindfulness},
		{Text: "Mindfulness is a way of befriending ourselves and our experience.", Author: "Jon Kabat-Zinn", Category: model.AgendaMindfulness},
		{Text: "Yesterday is history, tomorrow is a mystery, today is a gift.", Author: "Eleanor Roosevelt", Category: model.AgendaMindfulness},
		{Text: "Peace comes from within. Do not seek it without.", Author: "Buddha", Category: model.AgendaMindfulness},
		{Text: "The mind is everything. What you think you become.", Author: "Buddha", Category: model.AgendaMindfulness},

		// Success
		{Text: "Success is not the key to happiness. Happiness is the key to success.", Author: "Albert Schweitzer", Category: model.AgendaSuccess},
		{Text: "Don't be afraid to fail. Be afraid not to try.", Author: "Michael Jordan", Category: model.AgendaSuccess},
		{Text: "Success is walking from failure to failure with no loss of enthusiasm.", Author: "Winston Churchill", Category: model.AgendaSuccess},
		{Text: "The only impossible journey is the one you never begin.", Author: "Tony Robbins", Category: model.AgendaSuccess},
		{Text: "Success is not in what you have, but who you are.", Author: "Bo Bennett", Category: model.AgendaSuccess},

		// Relationships
		{Text: "The greatest gift of life is friendship, and I have received it.", Author: "Hubert H. Humphrey", Category: model.AgendaRelationships},
		{Text: "Being deeply loved by someone gives you strength, while loving someone deeply gives you courage.", Author: "Lao Tzu", Category: model.AgendaRelationships},
		{Text: "The best way to find out if you can trust somebody is to trust them.", Author: "Ernest Hemingway", Category: model.AgendaRelationships},
		{Text: "A friend is someone who knows all about you and still loves you.", Author: "Elbert Hubbard", Category: model.AgendaRelationships},
		{Text: "In the end, we will remember not the words of our enemies, but the silence of our friends.", Author: "Martin Luther King Jr.", Category: model.AgendaRelationships},

		// Creativity
		{Text: "Creativity is intelligence having fun.", Author: "Albert Einstein", Category: model.AgendaCreativity},
		{Text: "The creative adult is the child who survived.", Author: "Ursula K. Le Guin", Category: model.AgendaCreativity},
		{Text: "You can't use up creativity. The more you use, the more you have.", Author: "Maya Angelou", Category: model.AgendaCreativity},
		{Text: "Imagination is more important than knowledge.", Author: "Albert Einstein", Category: model.AgendaCreativity},
		{Text: "Every artist was first an amateur.", Author: "Ralph Waldo Emerson", Category: model.AgendaCreativity},

		// Fitness
		{Text: "The body achieves what the mind believes.", Author: "Napoleon Hill", Category: model.AgendaFitness},
		{Text: "Fitness is not about being better than someone else. It's about being better than you used to be.", Author: "Khloe Kardashian", Category: model.AgendaFitness},
		{Text: "Your body can do it. It's your mind that you have to convince.", Author: "Unknown", Category: model.AgendaFitness},
		{Text: "A one-hour workout is 4% of your day. No excuses.", Author: "Unknown", Category: model.AgendaFitness},
		{Text: "The groundwork for all happiness is good health.", Author: "Leigh Hunt", Category: model.AgendaFitness},

		// General
		{Text: "Be yourself; everyone else is already taken.", Author: "Oscar Wilde", Category: model.AgendaGeneral},
		{Text: "In the end, we only regret the chances we didn't take.", Author: "Lewis Carroll", Category: model.AgendaGeneral},
		{Text: "Life is really simple, but we insist on making it complicated.", Author: "Confucius", Category: model.AgendaGeneral},
		{Text: "The only way to make sense out of change is to plunge into it, move with it, and join the dance.", Author: "Alan Watts", Category: model.AgendaGeneral},
		{Text: "Happiness is not something ready made. It comes from your own actions.", Author: "Dalai Lama", Category: model.AgendaGeneral},
	}
}
