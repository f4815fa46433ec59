package util

import (
	"fmt"
	"inbetween-sim/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Waiving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Alpha", "Growling", "Slithering", "Swimming", "Flying", "Jumping", "Running", "Charging", "Shooting", "Bouncing",
	"Bounding", "Leaping",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Muskrat", "Otter", "Dolphin", "Porcupine", "Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Bird", "Dinosaur", "Okapi", "Eagle", "Mandrill", "Bonobo", "Wolf", "Fox", "Armadillo", "Rhino", "Anteater",
	"Reindeer", "Deer", "Panda",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], animals[gen.Intn(len(animals))])
}

// GetRandomNames returns n distinct names, used to label the seats at the table
// If there are more seats than names, the seat number is appended.
func GetRandomNames(gen rng.Generator, n int) []string {
	names := make([]string, n)
	seen := make(map[string]bool, n)
	for i := range names {
		name := GetRandomName(gen)
		for attempt := 0; seen[name] && attempt < 10; attempt++ {
			name = GetRandomName(gen)
		}

		if seen[name] {
			name = fmt.Sprintf("%s %d", name, i+1)
		}

		seen[name] = true
		names[i] = name
	}

	return names
}
