package task

import (
	"FractalExplorer/fractal"
	"errors"
	"fmt"
)

const (
	Row Partition = iota
	Column
	Image
)

var ErrNoMoreTasks = errors.New("no more tasks")

// Partition decides how an image is cut into tasks. Every task owns a disjoint set of pixels.
type Partition int

func (p Partition) String() string {
	return []string{
		"Row", "Column", "Image",
	}[p]
}

type Task struct {
	CurrentTask int
	Generation  uint64
	ID          uint
	Results     []fractal.Pixel
	Tasks       []Coordinate
}

func NewTask(id uint, generation uint64) Task {
	return Task{
		Generation: generation,
		ID:         id,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Generation: %d ", t.Generation)
	output += fmt.Sprintf("Result Count: %d ", len(t.Results))
	output += fmt.Sprintf("Task Count: %d}", len(t.Tasks))
	return output
}

func (t *Task) AddTaskForPixel(coordinate Coordinate) {
	t.Tasks = append(t.Tasks, coordinate)
}

func (t *Task) AddTasksForRow(imageRow uint16, imageWidth uint16) {
	for c := 0; c < int(imageWidth); c++ {
		t.AddTaskForPixel(Coordinate{Column: uint16(c), Row: imageRow})
	}
}

func (t *Task) AddTasksForColumn(imageHeight uint16, imageColumn uint16) {
	for r := 0; r < int(imageHeight); r++ {
		t.AddTaskForPixel(Coordinate{Column: imageColumn, Row: uint16(r)})
	}
}

func (t *Task) AddTasksForImage(imageHeight uint16, imageWidth uint16) {
	for r := 0; r < int(imageHeight); r++ {
		for c := 0; c < int(imageWidth); c++ {
			t.AddTaskForPixel(Coordinate{Column: uint16(c), Row: uint16(r)})
		}
	}
}

// GetNextTask
// Returns the current coordinate to be processed. Make sure to hand the result to the AddResult method before calling
// this method again
func (t *Task) GetNextTask() (Coordinate, error) {
	if len(t.Results) >= len(t.Tasks) {
		return Coordinate{}, ErrNoMoreTasks
	}
	return t.Tasks[t.CurrentTask], nil
}

// AddResult
// When recording a result the CurrentTask value is incremented so the next call to the GetNextTask method will return
// the correct coordinate
func (t *Task) AddResult(pixel fractal.Pixel) {
	if t.Results == nil {
		t.Results = make([]fractal.Pixel, 0, len(t.Tasks))
	}
	t.Results = append(t.Results, pixel)
	t.CurrentTask++
}

// Split cuts a width x height image into tasks according to the partition
func Split(partition Partition, width uint16, height uint16, generation uint64) ([]Task, error) {
	var tasks []Task
	switch partition {
	case Row:
		tasks = make([]Task, 0, height)
		for row := 0; row < int(height); row++ {
			todo := NewTask(uint(len(tasks)), generation)
			todo.AddTasksForRow(uint16(row), width)
			tasks = append(tasks, todo)
		}
	case Column:
		tasks = make([]Task, 0, width)
		for column := 0; column < int(width); column++ {
			todo := NewTask(uint(len(tasks)), generation)
			todo.AddTasksForColumn(height, uint16(column))
			tasks = append(tasks, todo)
		}
	case Image:
		todo := NewTask(0, generation)
		todo.AddTasksForImage(height, width)
		tasks = append(tasks, todo)
	default:
		return nil, fmt.Errorf("unknown partition: %d", partition)
	}
	return tasks, nil
}
