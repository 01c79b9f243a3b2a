package memory

import "myflix/proj/internal/domain/models"

var (
	drama    = models.Genre{Name: "Drama", Description: "Serious, plot-driven stories portraying realistic characters and emotional themes."}
	thriller = models.Genre{Name: "Thriller", Description: "Stories built around suspense, tension and excitement."}
	scifi    = models.Genre{Name: "Science Fiction", Description: "Speculative stories about science and technology and their consequences."}

	nolan   = models.Director{Name: "Christopher Nolan", Bio: "British-American filmmaker known for non-linear storytelling."}
	fincher = models.Director{Name: "David Fincher", Bio: "American director known for dark, meticulously crafted thrillers."}
)

// SeedMovies is the catalog served by the memory driver.
func SeedMovies() []models.Movie {
	return []models.Movie{
		{
			ID:          "5f1d7c0e8a1b2c3d4e5f6a01",
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
			Genre:       scifi,
			Director:    nolan,
			ImagePath:   "inception.png",
			Featured:    true,
		},
		{
			ID:          "5f1d7c0e8a1b2c3d4e5f6a02",
			Title:       "Memento",
			Description: "A man with short-term memory loss attempts to track down his wife's murderer.",
			Genre:       thriller,
			Director:    nolan,
			ImagePath:   "memento.png",
		},
		{
			ID:          "5f1d7c0e8a1b2c3d4e5f6a03",
			Title:       "Fight Club",
			Description: "An insomniac office worker and a soap maker form an underground fight club.",
			Genre:       drama,
			Director:    fincher,
			ImagePath:   "fightclub.png",
			Featured:    true,
		},
		{
			ID:          "5f1d7c0e8a1b2c3d4e5f6a04",
			Title:       "Se7en",
			Description: "Two detectives hunt a serial killer who uses the seven deadly sins as his motives.",
			Genre:       thriller,
			Director:    fincher,
			ImagePath:   "seven.png",
		},
		{
			ID:          "5f1d7c0e8a1b2c3d4e5f6a05",
			Title:       "Interstellar",
			Description: "A team of explorers travel through a wormhole in space to ensure humanity's survival.",
			Genre:       scifi,
			Director:    nolan,
			ImagePath:   "interstellar.png",
		},
	}
}
