package model

// DefaultReadingLists are the empty shelves a new profile may start with.
func DefaultReadingLists() []ReadingList {
	return []ReadingList{
		{ID: "to-read", Name: "To Read", Description: "Books I want to read in the future", Books: []Book{}},
		{ID: "currently-reading", Name: "Currently Reading", Description: "Books I'm reading right now", Books: []Book{}},
		{ID: "read", Name: "Read", Description: "Books I've finished reading", Books: []Book{}},
		{ID: "favorites", Name: "Favorites", Description: "My all-time favorite books", Books: []Book{}},
	}
}
