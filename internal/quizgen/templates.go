package quizgen

import "strings"

// Template is one fallback question. "{s}" in the text or options is
// replaced with the quiz subject.
type Template struct {
	Text    string
	Options [4]string
	Answer  string
}

// pythonFamily lists the subjects, lower-cased, served by the Python bank.
var pythonFamily = []string{"python", "programming", "python programming"}

var pythonTemplates = []Template{
	{"What is the output of the following Python expression: `len('{s}')` ?", [4]string{"A: 1", "B: 2", "C: len('{s}')", "D: runtime error"}, "A"},
	{"Which statement creates a function in Python?", [4]string{"A: func x():", "B: def f():", "C: function f()", "D: f := lambda"}, "B"},
	{"Which data type is immutable in Python?", [4]string{"A: list", "B: dict", "C: tuple", "D: set"}, "C"},
	{"How do you start a for-loop over list `L`?", [4]string{"A: for i in L:", "B: for i = 0; i < L; i++", "C: foreach L as i", "D: loop(L)"}, "A"},
	{"What keyword is used to create a class in Python?", [4]string{"A: create", "B: class", "C: struct", "D: def"}, "B"},
}

var genericTemplates = []Template{
	{"Which choice best defines {s}?", [4]string{"A: Option 1", "B: Option 2", "C: Option 3", "D: Option 4"}, "A"},
	{"What is a key concept in {s}?", [4]string{"A: Concept A", "B: Concept B", "C: Concept C", "D: Concept D"}, "B"},
}

// extendedTemplates adds subject banks for the rest of the form catalog.
// They are used only when the fallback generator is built with
// WithExtendedBanks.
var extendedTemplates = map[string][]Template{
	"ai": {
		{"Which technique trains a model on labeled examples?", [4]string{"A: Supervised learning", "B: Unsupervised learning", "C: Reinforcement learning", "D: Rule-based search"}, "A"},
		{"What does a neural network adjust during training?", [4]string{"A: Its input data", "B: Its weights", "C: Its loss function", "D: Its activation names"}, "B"},
		{"Which term describes a model that memorizes training data?", [4]string{"A: Underfitting", "B: Regularization", "C: Overfitting", "D: Normalization"}, "C"},
		{"What is a prompt in the context of {s} language models?", [4]string{"A: A training dataset", "B: A GPU kernel", "C: A loss value", "D: The input text given to the model"}, "D"},
	},
	"data science": {
		{"Which measure is most robust to outliers?", [4]string{"A: Mean", "B: Median", "C: Range", "D: Variance"}, "B"},
		{"Which plot best shows the distribution of one numeric variable?", [4]string{"A: Histogram", "B: Pie chart", "C: Line chart", "D: Heatmap"}, "A"},
		{"What does a correlation of 0 indicate?", [4]string{"A: Perfect positive relation", "B: Perfect negative relation", "C: No linear relation", "D: Causation"}, "C"},
		{"Which step splits data to estimate performance on unseen data?", [4]string{"A: Feature scaling", "B: One-hot encoding", "C: Imputation", "D: Train/test split"}, "D"},
	},
	"math": {
		{"What is the derivative of x^2?", [4]string{"A: x", "B: 2x", "C: x^3/3", "D: 2"}, "B"},
		{"Which number is prime?", [4]string{"A: 21", "B: 27", "C: 29", "D: 33"}, "C"},
		{"What is 15% of 200?", [4]string{"A: 30", "B: 15", "C: 20", "D: 35"}, "A"},
		{"What is the sum of the interior angles of a triangle?", [4]string{"A: 90 degrees", "B: 360 degrees", "C: 270 degrees", "D: 180 degrees"}, "D"},
	},
	"c++": {
		{"Which operator accesses a member through a pointer in C++?", [4]string{"A: .", "B: ->", "C: ::", "D: &"}, "B"},
		{"Which keyword allocates an object on the heap?", [4]string{"A: new", "B: malloc", "C: alloc", "D: create"}, "A"},
		{"Which standard container stores unique sorted keys?", [4]string{"A: std::vector", "B: std::list", "C: std::set", "D: std::deque"}, "C"},
		{"What does RAII tie resource lifetime to?", [4]string{"A: The heap", "B: Global variables", "C: Threads", "D: Object lifetime"}, "D"},
	},
}

// isPythonFamily reports whether subject uses the Python bank.
func isPythonFamily(subject string) bool {
	s := strings.ToLower(strings.TrimSpace(subject))
	for _, p := range pythonFamily {
		if s == p {
			return true
		}
	}
	return false
}
