// models/seed.go - Built-in challenge catalog and quiz bank
package models

import "github.com/lib/pq"

// DefaultChallenges returns the five built-in hunt challenges in order.
// Challenge 5 is the quiz gate; its stored answer is only a fallback, the
// real expected keywords are per group (see services.FinalKeyword).
func DefaultChallenges() []Challenge {
	return []Challenge{
		{
			Title:       "INIT_SEQUENCE",
			Description: "The first challenge requires decoding the initial access sequence. Group members, coordinate to find the hidden message in your assigned area and enter the access code below.",
			Answer:      "cyberstart",
			CodeName:    "Challenge 01: INIT_SEQUENCE",
			Order:       1,
		},
		{
			Title:       "CIPHER_BREAK",
			Description: "Decrypt the encoded message using Caesar Cipher to find the hidden password. Each group should focus on their assigned encryption key.",
			Answer:      "firewall",
			CodeName:    "Challenge 02: CIPHER_BREAK",
			Order:       2,
		},
		{
			Title:       "BINARY_DECODE",
			Description: "Convert the binary code to find the hidden password. Group-specific binary sequences have been distributed around the area.",
			Answer:      "network",
			CodeName:    "Challenge 03: BINARY_DECODE",
			Order:       3,
		},
		{
			Title:       "NETWORK_BREACH",
			Description: "Analyze the QR code to find the access credentials. Each group has a unique QR code in their designated area.",
			Answer:      "protocol",
			CodeName:    "Challenge 04: NETWORK_BREACH",
			Order:       4,
		},
		{
			Title:       "FINAL_QUIZ",
			Description: "Complete the IT quiz to finalize your mission. Each group will receive questions specific to their assigned BSIT topics.",
			Answer:      "mainframe",
			CodeName:    "Challenge 05: FINAL_QUIZ",
			Order:       5,
		},
	}
}

// DefaultQuizzes returns the built-in quiz bank: three questions for each of
// the four groups, each group themed to its assigned topic.
func DefaultQuizzes() []Quiz {
	return []Quiz{
		// Group 1 - Programming
		{
			GroupCode:     "1",
			Question:      "Which programming paradigm uses objects to model data and behavior?",
			Options:       pq.StringArray{"Procedural Programming", "Object-Oriented Programming", "Functional Programming", "Event-Driven Programming"},
			CorrectOption: 1,
			QuizIndex:     1,
		},
		{
			GroupCode:     "1",
			Question:      "Which data structure follows the Last In, First Out (LIFO) principle?",
			Options:       pq.StringArray{"Queue", "Stack", "Linked List", "Binary Tree"},
			CorrectOption: 1,
			QuizIndex:     2,
		},
		{
			GroupCode:     "1",
			Question:      "Which sorting algorithm has the best average-case time complexity?",
			Options:       pq.StringArray{"Bubble Sort", "Insertion Sort", "Merge Sort", "Selection Sort"},
			CorrectOption: 2,
			QuizIndex:     3,
		},

		// Group 2 - Networking
		{
			GroupCode:     "2",
			Question:      "Which protocol is used for secure web browsing?",
			Options:       pq.StringArray{"HTTP", "FTP", "HTTPS", "SMTP"},
			CorrectOption: 2,
			QuizIndex:     1,
		},
		{
			GroupCode:     "2",
			Question:      "Which layer of the OSI model is responsible for routing?",
			Options:       pq.StringArray{"Physical Layer", "Data Link Layer", "Network Layer", "Transport Layer"},
			CorrectOption: 2,
			QuizIndex:     2,
		},
		{
			GroupCode:     "2",
			Question:      "What device connects different networks together?",
			Options:       pq.StringArray{"Hub", "Switch", "Router", "Modem"},
			CorrectOption: 2,
			QuizIndex:     3,
		},

		// Group 3 - Databases
		{
			GroupCode:     "3",
			Question:      "Which SQL statement is used to retrieve data from a database?",
			Options:       pq.StringArray{"INSERT", "UPDATE", "DELETE", "SELECT"},
			CorrectOption: 3,
			QuizIndex:     1,
		},
		{
			GroupCode:     "3",
			Question:      "What does ACID stand for in database transactions?",
			Options:       pq.StringArray{"Atomicity, Consistency, Isolation, Durability", "Authorization, Consistency, Integrity, Dependability", "Adaptability, Consistency, Integration, Data", "Atomicity, Control, Isolation, Dependability"},
			CorrectOption: 0,
			QuizIndex:     2,
		},
		{
			GroupCode:     "3",
			Question:      "Which is not a type of database relationship?",
			Options:       pq.StringArray{"One-to-One", "One-to-Many", "Many-to-Many", "All-to-All"},
			CorrectOption: 3,
			QuizIndex:     3,
		},

		// Group 4 - Cybersecurity
		{
			GroupCode:     "4",
			Question:      "Which attack aims to gain unauthorized access by impersonating a trusted entity?",
			Options:       pq.StringArray{"DoS Attack", "SQL Injection", "Phishing", "Brute Force"},
			CorrectOption: 2,
			QuizIndex:     1,
		},
		{
			GroupCode:     "4",
			Question:      "Which encryption method uses the same key for encryption and decryption?",
			Options:       pq.StringArray{"Symmetric Encryption", "Asymmetric Encryption", "Public Key Infrastructure", "Quantum Encryption"},
			CorrectOption: 0,
			QuizIndex:     2,
		},
		{
			GroupCode:     "4",
			Question:      "What is the purpose of a firewall in network security?",
			Options:       pq.StringArray{"To encrypt data transmissions", "To monitor system performance", "To filter network traffic", "To backup important data"},
			CorrectOption: 2,
			QuizIndex:     3,
		},
	}
}
