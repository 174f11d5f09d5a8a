package tui

type state int

const (
	loadingState state = iota
	errorState
	homeState
	searchState
	titlesState
	seasonsState
	episodesState
	historyState
	relaysState
)
