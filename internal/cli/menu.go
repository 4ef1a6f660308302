package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"todo-manager/internal/domain"
	"todo-manager/internal/services"
)

// Menu drives the interactive console loop over the single-user task service.
// Input and output streams are injected so the loop is testable.
type Menu struct {
	tasks  *services.LocalTaskService
	in     *bufio.Scanner
	out    io.Writer
	maxLen int
}

// NewMenu creates an interactive menu bound to the given streams
func NewMenu(tasks *services.LocalTaskService, in io.Reader, out io.Writer, maxDescriptionLength int) *Menu {
	return &Menu{
		tasks:  tasks,
		in:     bufio.NewScanner(in),
		out:    out,
		maxLen: maxDescriptionLength,
	}
}

// Run executes the menu loop until the user exits or input ends
func (m *Menu) Run() {
	fmt.Fprintln(m.out, "Welcome to the Console ToDo Application!")

	for {
		m.displayMenu()

		choice, ok := m.readLine("Select an option (1-6): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.addTask()
		case "2":
			m.viewTasks()
		case "3":
			m.markComplete()
		case "4":
			m.updateTask()
		case "5":
			m.deleteTask()
		case "6":
			fmt.Fprintln(m.out, "Thank you for using the ToDo Application. Goodbye!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please select a number between 1-6.")
		}
	}
}

func (m *Menu) displayMenu() {
	divider := strings.Repeat("=", 40)
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, divider)
	fmt.Fprintln(m.out, "TODO APPLICATION MENU")
	fmt.Fprintln(m.out, divider)
	fmt.Fprintln(m.out, "1. Add Task")
	fmt.Fprintln(m.out, "2. View Tasks")
	fmt.Fprintln(m.out, "3. Mark Task Complete")
	fmt.Fprintln(m.out, "4. Update Task")
	fmt.Fprintln(m.out, "5. Delete Task")
	fmt.Fprintln(m.out, "6. Exit")
	fmt.Fprintln(m.out, divider)
}

func (m *Menu) addTask() {
	description, ok := m.readDescription()
	if !ok {
		return
	}
	if m.tasks.AddTask(description) {
		fmt.Fprintln(m.out, "Task added successfully!")
	} else {
		fmt.Fprintln(m.out, "Error: Failed to add task.")
	}
}

func (m *Menu) viewTasks() {
	tasks := m.tasks.GetAllTasks()
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "\nNo tasks found.")
		return
	}

	divider := strings.Repeat("-", 40)
	fmt.Fprintln(m.out, "\nYour Tasks:")
	fmt.Fprintln(m.out, divider)
	for _, task := range tasks {
		fmt.Fprintln(m.out, FormatTask(task))
	}
	fmt.Fprintln(m.out, divider)
}

func (m *Menu) markComplete() {
	if !m.requireTasks() {
		return
	}
	id, ok := m.readTaskID("Enter task ID to mark as complete: ")
	if !ok {
		return
	}
	if m.tasks.MarkTaskComplete(id) {
		fmt.Fprintln(m.out, "Task marked as complete!")
	} else {
		fmt.Fprintln(m.out, "Error: Could not mark task as complete. Task ID may be invalid.")
	}
}

func (m *Menu) updateTask() {
	if !m.requireTasks() {
		return
	}
	id, ok := m.readTaskID("Enter task ID to update: ")
	if !ok {
		return
	}
	description, ok := m.readDescription()
	if !ok {
		return
	}
	if m.tasks.UpdateTaskDescription(id, description) {
		fmt.Fprintln(m.out, "Task updated successfully!")
	} else {
		fmt.Fprintln(m.out, "Error: Could not update task. Task ID may be invalid or description may be empty.")
	}
}

func (m *Menu) deleteTask() {
	if !m.requireTasks() {
		return
	}
	id, ok := m.readTaskID("Enter task ID to delete: ")
	if !ok {
		return
	}
	if m.tasks.DeleteTask(id) {
		fmt.Fprintln(m.out, "Task deleted successfully!")
	} else {
		fmt.Fprintln(m.out, "Error: Could not delete task. Task ID may be invalid.")
	}
}

func (m *Menu) requireTasks() bool {
	if len(m.tasks.GetAllTasks()) == 0 {
		fmt.Fprintln(m.out, "Error: No tasks available. Add some tasks first.")
		return false
	}
	return true
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// readDescription prompts until a non-empty description within the length
// bound is entered, or input ends.
func (m *Menu) readDescription() (string, bool) {
	for {
		description, ok := m.readLine("Enter task description: ")
		if !ok {
			return "", false
		}
		if description == "" {
			fmt.Fprintln(m.out, "Error: Task description cannot be empty. Please try again.")
			continue
		}
		if utf8.RuneCountInString(description) > m.maxLen {
			fmt.Fprintf(m.out, "Error: Task description is too long. Maximum %d characters allowed. Please try again.\n", m.maxLen)
			continue
		}
		return description, true
	}
}

// readTaskID prompts until a positive integer is entered, or input ends.
func (m *Menu) readTaskID(prompt string) (int64, bool) {
	for {
		raw, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Error: Please enter a valid number for task ID.")
			continue
		}
		if id <= 0 {
			fmt.Fprintln(m.out, "Error: Task ID must be a positive integer. Please try again.")
			continue
		}
		return id, true
	}
}

// FormatTask renders a task the way the listing does, for reuse by callers
// that print a single task.
func FormatTask(task *domain.Task) string {
	return fmt.Sprintf("[%s] %d. %s", task.StatusGlyph(), task.ID, task.Description)
}
