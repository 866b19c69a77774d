package model

const placeholderCover = "/placeholder.svg?height=300&width=200"

// Seed returns the starter catalog.
func Seed() []Book {
	return []Book{
		{
			ID:            "1",
			Title:         "The Midnight Library",
			Author:        "Matt Haig",
			Description:   "Between life and death there is a library, and within that library, the shelves go on forever. Every book provides a chance to try another life you could have lived. To see how things would be if you had made other choices... Would you have done anything different, if you had the chance to undo your regrets?",
			CoverImage:    placeholderCover,
			PublishedDate: "2020-08-13",
			Genre:         "Fiction",
			PageCount:     304,
			ISBN:          "9780525559474",
			AverageRating: 4.2,
			RatingsCount:  1243,
		},
		{
			ID:            "2",
			Title:         "Project Hail Mary",
			Author:        "Andy Weir",
			Description:   "Ryland Grace is the sole survivor on a desperate, last-chance mission, and if he fails, humanity and the earth itself will perish. Except that right now, he doesn't know that. He can't even remember his own name, let alone the nature of his assignment or how to complete it.",
			CoverImage:    placeholderCover,
			PublishedDate: "2021-05-04",
			Genre:         "Science Fiction",
			PageCount:     496,
			ISBN:          "9780593135204",
			AverageRating: 4.5,
			RatingsCount:  987,
		},
		{
			ID:            "3",
			Title:         "Klara and the Sun",
			Author:        "Kazuo Ishiguro",
			Description:   "From the bestselling and Booker Prize winning author of Never Let Me Go and The Remains of the Day, a stunning new novel, his first since winning the Nobel Prize in Literature, about the wondrous, mysterious nature of the human heart.",
			CoverImage:    placeholderCover,
			PublishedDate: "2021-03-02",
			Genre:         "Literary Fiction",
			PageCount:     320,
			ISBN:          "9780571364879",
			AverageRating: 3.9,
			RatingsCount:  756,
		},
		{
			ID:            "4",
			Title:         "The Four Winds",
			Author:        "Kristin Hannah",
			Description:   "From the number-one bestselling author of The Nightingale and The Great Alone comes a powerful American epic about love and heroism and hope, set during the Great Depression, a time when the country was in crisis and at war with itself, when millions were out of work and even the land seemed to have turned against them.",
			CoverImage:    placeholderCover,
			PublishedDate: "2021-02-02",
			Genre:         "Historical Fiction",
			PageCount:     464,
			ISBN:          "9781250178602",
			AverageRating: 4.3,
			RatingsCount:  1102,
		},
		{
			ID:            "5",
			Title:         "The Invisible Life of Addie LaRue",
			Author:        "V.E. Schwab",
			Description:   "A Life No One Will Remember. A Story You Will Never Forget. France, 1714: in a moment of desperation, a young woman makes a Faustian bargain to live forever and is cursed to be forgotten by everyone she meets.",
			CoverImage:    placeholderCover,
			PublishedDate: "2020-10-06",
			Genre:         "Fantasy",
			PageCount:     448,
			ISBN:          "9780765387561",
			AverageRating: 4.4,
			RatingsCount:  1532,
		},
		{
			ID:            "6",
			Title:         "Dune",
			Author:        "Frank Herbert",
			Description:   `Set on the desert planet Arrakis, Dune is the story of the boy Paul Atreides, heir to a noble family tasked with ruling an inhospitable world where the only thing of value is the "spice" melange, a drug capable of extending life and enhancing consciousness.`,
			CoverImage:    placeholderCover,
			PublishedDate: "1965-08-01",
			Genre:         "Science Fiction",
			PageCount:     412,
			ISBN:          "9780441172719",
			AverageRating: 4.6,
			RatingsCount:  2345,
		},
		{
			ID:            "7",
			Title:         "The Song of Achilles",
			Author:        "Madeline Miller",
			Description:   "A tale of gods, kings, immortal fame, and the human heart, The Song of Achilles is a dazzling literary feat that brilliantly reimagines Homer's enduring masterwork, The Iliad.",
			CoverImage:    placeholderCover,
			PublishedDate: "2012-03-06",
			Genre:         "Historical Fiction",
			PageCount:     378,
			ISBN:          "9780062060624",
			AverageRating: 4.7,
			RatingsCount:  1876,
		},
		{
			ID:            "8",
			Title:         "Educated",
			Author:        "Tara Westover",
			Description:   "An unforgettable memoir about a young girl who, kept out of school, leaves her survivalist family and goes on to earn a PhD from Cambridge University.",
			CoverImage:    placeholderCover,
			PublishedDate: "2018-02-20",
			Genre:         "Non-Fiction",
			PageCount:     334,
			ISBN:          "9780399590504",
			AverageRating: 4.5,
			RatingsCount:  2103,
		},
		{
			ID:            "9",
			Title:         "Where the Crawdads Sing",
			Author:        "Delia Owens",
			Description:   "For years, rumors of the 'Marsh Girl' have haunted Barkley Cove, a quiet town on the North Carolina coast. So in late 1969, when handsome Chase Andrews is found dead, the locals immediately suspect Kya Clark, the so-called Marsh Girl.",
			CoverImage:    placeholderCover,
			PublishedDate: "2018-08-14",
			Genre:         "Fiction",
			PageCount:     368,
			ISBN:          "9780735219090",
			AverageRating: 4.8,
			RatingsCount:  2567,
		},
		{
			ID:            "10",
			Title:         "The Silent Patient",
			Author:        "Alex Michaelides",
			Description:   "Alicia Berenson's life is seemingly perfect. A famous painter married to an in-demand fashion photographer, she lives in a grand house with big windows overlooking a park in one of London's most desirable areas. One evening her husband Gabriel returns home late from a fashion shoot, and Alicia shoots him five times in the face, and then never speaks another word.",
			CoverImage:    placeholderCover,
			PublishedDate: "2019-02-05",
			Genre:         "Thriller",
			PageCount:     325,
			ISBN:          "9781250301697",
			AverageRating: 4.3,
			RatingsCount:  1932,
		},
	}
}
