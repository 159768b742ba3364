package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// SeedQuestions installs the starter question bank for daily missions and
// assessments. The bank is append-only: the daily picker indexes into it by
// id order, so replacing rows in place would reshuffle past assignments.
func SeedQuestions() {
	log.Println("🧩 Seeding Question Bank...")

	questions := []models.Question{
		{
			Title:       "Hello World",
			Description: "Write a program that prints 'Hello, World!' to the console.\n\nThis is the classic first program for any language.",
			Difficulty:  "EASY",
			Category:    "Basics",
			Language:    "python",
			StarterCode: "# Write your solution here\n",
			TestCases:   `[{"input": "", "expected": "Hello, World!"}]`,
			TimeLimit:   2,
			MemoryLimit: 128,
		},
		{
			Title:       "Sum of Two Numbers",
			Description: "Read two integers a and b from input and print their sum.\n\nExample:\nInput: 5 3\nOutput: 8",
			Difficulty:  "EASY",
			Category:    "Math",
			Language:    "javascript",
			StarterCode: "// Read from stdin, print the sum\n",
			TestCases:   `[{"input": "5 3", "expected": "8"}, {"input": "0 0", "expected": "0"}]`,
			TimeLimit:   2,
			MemoryLimit: 128,
		},
		{
			Title:       "Reverse a String",
			Description: "Read a string and print it reversed.\n\nExample:\nInput: hello\nOutput: olleh",
			Difficulty:  "EASY",
			Category:    "Strings",
			Language:    "python",
			StarterCode: "s = input()\n# Your code here\n",
			TestCases:   `[{"input": "hello", "expected": "olleh"}, {"input": "world", "expected": "dlrow"}]`,
			TimeLimit:   2,
			MemoryLimit: 128,
		},
		{
			Title:       "FizzBuzz",
			Description: "Print numbers from 1 to n, one per line. For multiples of 3 print 'Fizz', for multiples of 5 print 'Buzz', for multiples of both print 'FizzBuzz'.",
			Difficulty:  "MEDIUM",
			Category:    "Logic",
			Language:    "javascript",
			StarterCode: "// Read n from stdin\n",
			TestCases:   `[{"input": "15", "expected": "1\n2\nFizz\n4\nBuzz\nFizz\n7\n8\nFizz\nBuzz\n11\nFizz\n13\n14\nFizzBuzz"}]`,
			TimeLimit:   2,
			MemoryLimit: 128,
		},
		{
			Title:       "Palindrome Check",
			Description: "Read a string and print 'true' if it is a palindrome, 'false' otherwise.\n\nExample:\nInput: racecar\nOutput: true",
			Difficulty:  "MEDIUM",
			Category:    "Strings",
			Language:    "go",
			StarterCode: "package main\n\nfunc main() {\n\t// Your code here\n}\n",
			TestCases:   `[{"input": "racecar", "expected": "true"}, {"input": "hello", "expected": "false"}]`,
			TimeLimit:   2,
			MemoryLimit: 128,
		},
		{
			Title:       "Find Maximum in Array",
			Description: "Read a line of space-separated integers and print the maximum value.\n\nExample:\nInput: 3 1 4 1 5 9 2 6\nOutput: 9",
			Difficulty:  "EASY",
			Category:    "Arrays",
			Language:    "python",
			StarterCode: "nums = list(map(int, input().split()))\n# Your code here\n",
			TestCases:   `[{"input": "3 1 4 1 5 9 2 6", "expected": "9"}]`,
			TimeLimit:   2,
			MemoryLimit: 128,
		},
		{
			Title:       "Vowel Count",
			Description: "Read a string and print the number of vowels (a, e, i, o, u) it contains.",
			Difficulty:  "EASY",
			Category:    "Strings",
			Language:    "java",
			StarterCode: "import java.util.*;\npublic class Main {\n    public static void main(String[] args) {\n        // Your code here\n    }\n}\n",
			TestCases:   `[{"input": "programming", "expected": "3"}, {"input": "xyz", "expected": "0"}]`,
			TimeLimit:   2,
			MemoryLimit: 128,
		},
		{
			Title:       "Binary to Decimal",
			Description: "Read a binary number as a string and print its decimal value.\n\nExample:\nInput: 1011\nOutput: 11",
			Difficulty:  "MEDIUM",
			Category:    "Math",
			Language:    "go",
			StarterCode: "package main\n\nfunc main() {\n\t// Your code here\n}\n",
			TestCases:   `[{"input": "1011", "expected": "11"}, {"input": "0", "expected": "0"}]`,
			TimeLimit:   2,
			MemoryLimit: 128,
		},
	}

	for _, q := range questions {
		var existing models.Question
		if err := database.DB.Where("title = ? AND language = ?", q.Title, q.Language).First(&existing).Error; err == nil {
			continue
		}

		q.ID = uuid.New().String()
		if err := database.DB.Create(&q).Error; err != nil {
			log.Printf("   ❌ Failed: %s - %v", q.Title, err)
		} else {
			log.Printf("   🧩 Question Added: %s (%s, %s)", q.Title, q.Language, q.Difficulty)
		}
	}
}
