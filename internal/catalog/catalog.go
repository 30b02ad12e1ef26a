// Package catalog defines the capability survey: the ordered tools, their yes/no
// questions, and the confidence dimensions rated for every tool. It is the single
// source for question counts, stored column names, and form rendering.
package catalog

import (
	"fmt"
	"slices"

	"github.com/JaimeStill/assessor/pkg/query"
)

// Version identifies the catalog revision. Bump it whenever a tool, question,
// or dimension changes, since stored column names derive from the catalog.
const Version = "1"

// Rating bounds for confidence dimensions. Values outside the range are treated as absent.
const (
	MinRating = 1
	MaxRating = 5
)

// Question is a single yes/no prompt within a tool.
type Question struct {
	Index  int    `json:"index"`
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// Tool groups the questions asked about one product.
// Prefix namespaces the tool's stored columns.
type Tool struct {
	Key       string     `json:"key"`
	Name      string     `json:"name"`
	Prefix    string     `json:"prefix"`
	Questions []Question `json:"questions"`
}

// Dimension is one confidence axis rated per tool.
type Dimension struct {
	Key    string `json:"key"`
	Column string `json:"column"`
	Label  string `json:"label"`
}

var tools = []Tool{
	newTool("title-profile", "Title Profile", "tp",
		"Do you know how to access Title Profile?",
		"Do you know how to set up clients to receive profiles or alerts?",
		"Can you run property profiles?",
		"Can you explain profile sections to a client?",
		"Can you search by APN, owner, or address?",
	),
	newTool("title-toolbox", "Title Tool Box", "ttb",
		"Know how to log in / access",
		"Know how to create a client farm",
		"Know how to set up client saved searches",
		"Can create farm lists",
		"Can build targeted lists (NOD, equity, absentee, etc.)",
		"Can export lists",
	),
	newTool("pacific-agent-one", "Pacific Agent ONE", "pao",
		"Know how to access & install the app",
		"Know how to add clients into the app",
		"Know how to brand the app with their info",
		"Can generate seller net sheets & buyer estimates",
		"Can share branded live net sheets with clients",
	),
	newTool("pct-smart-direct", "PCT Smart Direct", "psd",
		"Know how to access Smart Direct",
		"Can set up new client campaigns",
		"Can create mailing lists",
		"Can generate postcards",
		"Can filter properly (distress, equity, absentee, etc.)",
	),
	newTool("pct-website", "PCT Website", "pw",
		"Know how to navigate the website",
		"Know how to set up clients with tools or resources",
		"Can find all available resources",
		"Can guide clients through the site",
	),
	newTool("trainings", "Trainings Offered by PCT", "tr",
		"Know what trainings are available",
		"Know how to access training schedules",
		"Know how to enroll clients in trainings",
		"Know how to leverage training content",
	),
	newTool("sales-dashboard", "Sales Dashboard", "sd",
		"Do you know how to access your PCT Sales Dashboard?",
		"Do you know how to read your numbers?",
		"Are you checking weekly? (Sales Units, Refi Units, Revenue, Pipeline, Assigned Accounts, Activity Metrics)",
		"Do you know how to track: Personal goals, Monthly targets, Year-over-year comparison, Daily activity requirements",
	),
}

var dimensions = []Dimension{
	{Key: "awareness", Column: "awareness", Label: "Awareness"},
	{Key: "access", Column: "access", Label: "Know How to Access"},
	{Key: "setup", Column: "setup", Label: "Know How to Setup"},
	{Key: "usage", Column: "usage", Label: "Usage"},
	{Key: "needTraining", Column: "need_training", Label: "Need Training"},
}

var (
	totalQuestions = countQuestions()
	answerColumns  = buildAnswerColumns()
	ratingColumns  = buildRatingColumns()
)

func newTool(key, name, prefix string, prompts ...string) Tool {
	questions := make([]Question, len(prompts))
	for i, p := range prompts {
		questions[i] = Question{
			Index:  i + 1,
			ID:     fmt.Sprintf("q%d", i+1),
			Prompt: p,
		}
	}
	return Tool{Key: key, Name: name, Prefix: prefix, Questions: questions}
}

// Tools returns the ordered tool list.
func Tools() []Tool {
	return slices.Clone(tools)
}

// Dimensions returns the ordered confidence dimensions.
func Dimensions() []Dimension {
	return slices.Clone(dimensions)
}

// TotalQuestions is the number of yes/no questions across all tools.
// It is the fixed denominator of the capability score.
func TotalQuestions() int {
	return totalQuestions
}

// FindTool returns the tool with the given key.
func FindTool(key string) (Tool, bool) {
	for _, t := range tools {
		if t.Key == key {
			return t, true
		}
	}
	return Tool{}, false
}

// AnswerColumn returns the stored column name for a question, e.g. tp_q1.
func AnswerColumn(t Tool, q Question) string {
	return fmt.Sprintf("%s_%s", t.Prefix, q.ID)
}

// RatingColumn returns the stored column name for a dimension, e.g. tp_need_training.
func RatingColumn(t Tool, d Dimension) string {
	return fmt.Sprintf("%s_%s", t.Prefix, d.Column)
}

// Columns returns every wide-table column in catalog order:
// all answer columns followed by all rating columns.
func Columns() []string {
	return slices.Concat(answerColumns, ratingColumns)
}

// AnswerColumns returns the yes/no answer columns in catalog order.
func AnswerColumns() []string {
	return slices.Clone(answerColumns)
}

// RatingColumns returns the confidence rating columns in catalog order.
func RatingColumns() []string {
	return slices.Clone(ratingColumns)
}

func countQuestions() int {
	n := 0
	for _, t := range tools {
		n += len(t.Questions)
	}
	return n
}

func buildAnswerColumns() []string {
	cols := make([]string, 0, countQuestions())
	for _, t := range tools {
		for _, q := range t.Questions {
			cols = append(cols, AnswerColumn(t, q))
		}
	}
	return cols
}

func buildRatingColumns() []string {
	cols := make([]string, 0, len(tools)*len(dimensions))
	for _, t := range tools {
		for _, d := range dimensions {
			cols = append(cols, RatingColumn(t, d))
		}
	}
	return cols
}

// Project adds every answer and rating column to p, keyed by the column name.
func Project(p *query.ProjectionMap) *query.ProjectionMap {
	for _, c := range Columns() {
		p.Project(c, c)
	}
	return p
}
