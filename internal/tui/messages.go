package tui

import "github.com/Veraticus/the-fine-print/internal/model"

// File loading messages.
type fileLoadedMsg struct {
	path string
	text string
}

type fileLoadFailedMsg struct {
	err  error
	path string
}

// Analysis messages.
type analysisCompleteMsg struct {
	result model.AnalysisResult
}

type analysisFailedMsg struct {
	err error
}
