// Package quiz converts fixed-length multiple-choice assessments into
// discrete skill levels. Question banks are static configuration; grading
// and the answer/skip session are pure over their inputs.
package quiz

import (
	"fmt"
	"strings"

	"github.com/novonex/skill-align/internal/types"
)

// QuestionCount is the fixed length of every skill assessment
const QuestionCount = 5

// QuestionsForSkill returns the 5-question bank for a skill. Skills without
// a dedicated bank fall back to a generic template whose correct-answer
// semantics apply unchanged.
func QuestionsForSkill(skillID string) []types.QuizQuestion {
	if bank, ok := skillBanks[skillID]; ok {
		out := make([]types.QuizQuestion, len(bank))
		copy(out, bank)
		return out
	}
	return genericQuestions(skillID)
}

// genericQuestions builds the fallback template for a skill with no
// dedicated bank. Hyphenated skill ids read as plain words in the text.
func genericQuestions(skillID string) []types.QuizQuestion {
	name := strings.ReplaceAll(skillID, "-", " ")
	return []types.QuizQuestion{
		{
			ID:   "gen1",
			Text: fmt.Sprintf("How would you describe your basic understanding of %s?", name),
			Options: []string{
				"I have never heard of it",
				"I know the basic syntax/concepts",
				"I can build small projects with it",
				"I use it professionally/advanced level",
			},
			CorrectAnswer: 1,
		},
		{
			ID:   "gen2",
			Text: fmt.Sprintf("Which of these best describes a core concept in %s?", name),
			Options: []string{
				"It is a tool for everything",
				"It has specific use cases and patterns",
				"It is better than all alternatives",
				"It is deprecated",
			},
			CorrectAnswer: 1,
		},
		{
			ID:   "gen3",
			Text: fmt.Sprintf("How do you stay updated with %s developments?", name),
			Options: []string{
				"I dont",
				"Reading official documentation and community blogs",
				"Watching memes",
				"Waiting for it to change",
			},
			CorrectAnswer: 1,
		},
		{
			ID:   "gen4",
			Text: fmt.Sprintf("What is a common challenge when working with %s?", name),
			Options: []string{
				"Its too easy",
				"Debugging and optimization",
				"Finding a name for it",
				"Changing the font",
			},
			CorrectAnswer: 1,
		},
		{
			ID:   "gen5",
			Text: fmt.Sprintf("Why is %s important for modern development?", name),
			Options: []string{
				"It isnt",
				"It improves efficiency, reliability, or solves specific technical problems",
				"Everyone else is using it",
				"It looks good on a resume",
			},
			CorrectAnswer: 1,
		},
	}
}

var skillBanks = map[string][]types.QuizQuestion{
	"javascript": {
		{
			ID:            "js1",
			Text:          "What is the output of `typeof null`?",
			Options:       []string{`"null"`, `"object"`, `"undefined"`, `"number"`},
			CorrectAnswer: 1,
		},
		{
			ID:            "js2",
			Text:          "Which keyword is used to declare a block-scoped variable?",
			Options:       []string{"var", "let", "set", "const"},
			CorrectAnswer: 1,
		},
		{
			ID:   "js3",
			Text: "What is a closure in JavaScript?",
			Options: []string{
				"A way to close a browser tab",
				"A function bundled together with its lexical environment",
				"A method to terminate a loop",
				"A private class member",
			},
			CorrectAnswer: 1,
		},
		{
			ID:            "js4",
			Text:          "How do you handle asynchronous operations in modern JS?",
			Options:       []string{"Callbacks only", "Promises and Async/Await", "Iterators", "Recursion"},
			CorrectAnswer: 1,
		},
		{
			ID:   "js5",
			Text: "What is the purpose of the Prototypal Inheritance?",
			Options: []string{
				"To speed up execution",
				"To allow objects to inherit properties and methods from other objects",
				"To hide data from the user",
				"To create multiple instances of a class",
			},
			CorrectAnswer: 1,
		},
	},
	"react": {
		{
			ID:            "react1",
			Text:          "What is the main purpose of React?",
			Options:       []string{"Database management", "Building user interfaces", "Server-side routing", "Data styling"},
			CorrectAnswer: 1,
		},
		{
			ID:   "react2",
			Text: "What is a Hook in React?",
			Options: []string{
				"A way to connect to a database",
				`Functions that let you "hook into" React state and lifecycle features from function components`,
				"A CSS selector",
				"A type of component",
			},
			CorrectAnswer: 1,
		},
		{
			ID:   "react3",
			Text: "What does the `useState` hook return?",
			Options: []string{
				"The current state value",
				"A function to update the state",
				"An array with the current state and a function to update it",
				"The state object",
			},
			CorrectAnswer: 2,
		},
		{
			ID:   "react4",
			Text: "What is the Virtual DOM?",
			Options: []string{
				"A direct copy of the actual DOM",
				"A lightweight representation of the real DOM in memory",
				"A browser feature for fast rendering",
				"A CSS framework",
			},
			CorrectAnswer: 1,
		},
		{
			ID:   "react5",
			Text: "When does the `useEffect` hook run by default?",
			Options: []string{
				"Only on the first render",
				"Every time a component updates",
				"After every render (including the first one)",
				"Only when the component unmounts",
			},
			CorrectAnswer: 2,
		},
	},
	"python": {
		{
			ID:            "py1",
			Text:          "How do you define a function in Python?",
			Options:       []string{"function myFunc():", "def myFunc():", "func myFunc():", "lambda myFunc():"},
			CorrectAnswer: 1,
		},
		{
			ID:            "py2",
			Text:          "What is the correct syntax for a list in Python?",
			Options:       []string{"(1, 2, 3)", "{1, 2, 3}", "[1, 2, 3]", "<1, 2, 3>"},
			CorrectAnswer: 2,
		},
		{
			ID:   "py3",
			Text: `What is a "list comprehension"?`,
			Options: []string{
				"A way to compress lists",
				"A concise way to create lists based on existing lists",
				"A documentation tool for lists",
				"A method to sort lists",
			},
			CorrectAnswer: 1,
		},
		{
			ID:            "py4",
			Text:          "Which of the following is used for exception handling?",
			Options:       []string{"try...catch", "try...except", "if...else", "do...while"},
			CorrectAnswer: 1,
		},
		{
			ID:   "py5",
			Text: "What is the purpose of `__init__` in a class?",
			Options: []string{
				"To initialize the class attributes when an object is created",
				"To delete an object",
				"To print the object",
				"To make the class private",
			},
			CorrectAnswer: 0,
		},
	},
	"typescript": {
		{
			ID:   "ts1",
			Text: "What is TypeScript?",
			Options: []string{
				"A new programming language",
				"A superset of JavaScript that adds static typing",
				"A database for JavaScript",
				"A faster version of Node.js",
			},
			CorrectAnswer: 1,
		},
		{
			ID:            "ts2",
			Text:          "How do you define an interface in TypeScript?",
			Options:       []string{"type MyType = {}", "interface MyInterface {}", "class MyClass {}", "struct MyStruct {}"},
			CorrectAnswer: 1,
		},
		{
			ID:   "ts3",
			Text: `What is the "any" type?`,
			Options: []string{
				"A type that can be anything, effectively opting out of type checking",
				"A standard numeric type",
				"A type for strings only",
				"A type for arrays",
			},
			CorrectAnswer: 0,
		},
		{
			ID:   "ts4",
			Text: `What is a "generic" in TypeScript?`,
			Options: []string{
				"A reusable component that can work with a variety of types",
				"A basic type like string or number",
				"A way to name variables",
				"A styling utility",
			},
			CorrectAnswer: 0,
		},
		{
			ID:            "ts5",
			Text:          "How do you specify that a property in an interface is optional?",
			Options:       []string{"property!", "property:", "property?", "property??"},
			CorrectAnswer: 2,
		},
	},
	"sql": {
		{
			ID:   "sql1",
			Text: "What does SQL stand for?",
			Options: []string{
				"Structured Query Language",
				"Simple Query Language",
				"Sequential Query Language",
				"Standard Question Language",
			},
			CorrectAnswer: 0,
		},
		{
			ID:            "sql2",
			Text:          "Which clause is used to filter records?",
			Options:       []string{"SORT BY", "WHERE", "HAVING", "GROUP BY"},
			CorrectAnswer: 1,
		},
		{
			ID:   "sql3",
			Text: `What is a "JOIN"?`,
			Options: []string{
				"A way to delete data",
				"A way to combine rows from two or more tables based on a related column",
				"A way to update multiple rows",
				"A tool for database backup",
			},
			CorrectAnswer: 1,
		},
		{
			ID:   "sql4",
			Text: "What is a Primary Key?",
			Options: []string{
				"A unique identifier for each record in a table",
				"The first column of a table",
				"A key used to encrypt the database",
				"A password for the database",
			},
			CorrectAnswer: 0,
		},
		{
			ID:            "sql5",
			Text:          "Which command is used to add new data to a table?",
			Options:       []string{"ADD", "UPDATE", "INSERT INTO", "NEW"},
			CorrectAnswer: 2,
		},
	},
}
