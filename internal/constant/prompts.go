package constant

// InitialChatContext primes every chat conversation before user history is
// replayed. The documents of the active folder are attached alongside it.
const InitialChatContext = `You are a helpful study assistant. You help students understand their study materials, answer questions about the documents they have uploaded, create practice questions, and explain difficult concepts in simple terms. Base your answers on the provided documents whenever possible. If a question cannot be answered from the documents, say so and answer from general knowledge.`

// QuizPrompt asks the model for a strict JSON payload. The parser tolerates
// fencing and surrounding prose, but the prompt keeps failures rare.
const QuizPrompt = `Generate a multiple-choice quiz from the attached document.

Return ONLY a JSON object inside a ` + "```json" + ` code block, with this exact shape:

{
  "questions": [
    {
      "id": 1,
      "question": "The question text",
      "options": [
        {"id": 1, "text": "First option"},
        {"id": 2, "text": "Second option"},
        {"id": 3, "text": "Third option"},
        {"id": 4, "text": "Fourth option"}
      ],
      "correctAnswer": 2
    }
  ]
}

Rules:
- Every question must have exactly 4 options.
- "correctAnswer" must be the id of the correct option.
- Generate 5 to 10 questions covering the key ideas of the document.
- Do not include any text outside the JSON code block.`

// SummaryPrompt asks for chaptered JSON. Older model versions ignored the
// instruction and returned prose, so downstream parsing keeps a plain-text
// fallback.
const SummaryPrompt = `Summarize the attached document into chapters.

Return ONLY a JSON array inside a ` + "```json" + ` code block, with this exact shape:

[
  {"title": "Chapter title", "content": "Chapter summary text"},
  {"title": "Next chapter title", "content": "Next chapter summary text"}
]

Rules:
- Split the document into 3 to 8 logical chapters.
- Each chapter needs a short title and a substantial content summary.
- Do not include any text outside the JSON code block.`

// DefaultAttachmentPrompt is used when a chat message carries a file but no
// text.
const DefaultAttachmentPrompt = "Please analyze this document and give me a brief overview of its contents."
