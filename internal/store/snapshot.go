package store

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

// Snapshot exports the full store state. The result shares nothing with
// the live store and can be serialized or rehydrated as-is.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := models.Snapshot{
		Modules:             make(map[string]models.Module, len(s.modules)),
		LearningObjectives:  make(map[string]models.LearningObjective, len(s.los)),
		Topics:              make(map[string]models.Topic, len(s.topics)),
		Subtopics:           make(map[string]models.Subtopic, len(s.subtopics)),
		Lessons:             make(map[string]models.Lesson, len(s.lessons)),
		Slides:              make(map[string]models.Slide, len(s.slides)),
		PerformanceCriteria: make(map[string]models.PerformanceCriteria, len(s.pcs)),
		Links:               append([]models.PCLink{}, s.links...),
	}
	for id, m := range s.modules {
		snap.Modules[id] = *m
	}
	for id, lo := range s.los {
		snap.LearningObjectives[id] = *lo
	}
	for id, t := range s.topics {
		snap.Topics[id] = *t
	}
	for id, st := range s.subtopics {
		snap.Subtopics[id] = *st
	}
	for id, l := range s.lessons {
		snap.Lessons[id] = copyLesson(l)
	}
	for id, sl := range s.slides {
		snap.Slides[id] = *sl
	}
	for id, pc := range s.pcs {
		snap.PerformanceCriteria[id] = *pc
	}
	return snap
}

// Restore replaces the store state with a snapshot. The snapshot is
// validated first; an invalid snapshot leaves the store untouched.
func (s *Store) Restore(snap models.Snapshot) error {
	if err := ValidateSnapshot(snap); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.modules = make(map[string]*models.Module, len(snap.Modules))
	for id, m := range snap.Modules {
		m := m
		s.modules[id] = &m
	}
	s.los = make(map[string]*models.LearningObjective, len(snap.LearningObjectives))
	for id, lo := range snap.LearningObjectives {
		lo := lo
		s.los[id] = &lo
	}
	s.topics = make(map[string]*models.Topic, len(snap.Topics))
	for id, t := range snap.Topics {
		t := t
		s.topics[id] = &t
	}
	s.subtopics = make(map[string]*models.Subtopic, len(snap.Subtopics))
	for id, st := range snap.Subtopics {
		st := st
		s.subtopics[id] = &st
	}
	s.lessons = make(map[string]*models.Lesson, len(snap.Lessons))
	for id, l := range snap.Lessons {
		cp := copyLesson(&l)
		s.lessons[id] = &cp
	}
	s.slides = make(map[string]*models.Slide, len(snap.Slides))
	for id, sl := range snap.Slides {
		sl := sl
		s.slides[id] = &sl
	}
	s.pcs = make(map[string]*models.PerformanceCriteria, len(snap.PerformanceCriteria))
	for id, pc := range snap.PerformanceCriteria {
		pc := pc
		s.pcs[id] = &pc
	}
	s.links = append([]models.PCLink{}, snap.Links...)

	s.logger.Info("store rehydrated",
		zap.Int("modules", len(s.modules)),
		zap.Int("topics", len(s.topics)),
		zap.Int("lessons", len(s.lessons)))
	return nil
}

// ValidateSnapshot checks the referential integrity of a snapshot:
// every parent reference, lesson coverage reference, slide binding and
// criteria link must point at an entity the snapshot contains.
func ValidateSnapshot(snap models.Snapshot) error {
	if problems := SnapshotProblems(snap); len(problems) > 0 {
		return &ValidationError{Message: problems[0]}
	}
	return nil
}

// SnapshotProblems returns a description of every dangling reference in
// the snapshot, sorted for stable output. An empty result means the
// snapshot is internally consistent.
func SnapshotProblems(snap models.Snapshot) []string {
	var problems []string
	for id, lo := range snap.LearningObjectives {
		if _, ok := snap.Modules[lo.ModuleID]; !ok {
			problems = append(problems, fmt.Sprintf("objective %q references missing module %q", id, lo.ModuleID))
		}
	}
	for id, t := range snap.Topics {
		if t.LOID == "" {
			continue
		}
		if _, ok := snap.LearningObjectives[t.LOID]; !ok {
			problems = append(problems, fmt.Sprintf("topic %q references missing objective %q", id, t.LOID))
		}
	}
	for id, st := range snap.Subtopics {
		if _, ok := snap.Topics[st.TopicID]; !ok {
			problems = append(problems, fmt.Sprintf("subtopic %q references missing topic %q", id, st.TopicID))
		}
	}
	for id, l := range snap.Lessons {
		for _, topicID := range l.Topics {
			if _, ok := snap.Topics[topicID]; !ok {
				problems = append(problems, fmt.Sprintf("lesson %q references missing topic %q", id, topicID))
			}
		}
		for _, loID := range l.LearningObjectives {
			if _, ok := snap.LearningObjectives[loID]; !ok {
				problems = append(problems, fmt.Sprintf("lesson %q references missing objective %q", id, loID))
			}
		}
		for _, pcID := range l.PerformanceCriteria {
			if _, ok := snap.PerformanceCriteria[pcID]; !ok {
				problems = append(problems, fmt.Sprintf("lesson %q references missing performance criteria %q", id, pcID))
			}
		}
	}
	for id, sl := range snap.Slides {
		if _, ok := snap.Lessons[sl.LessonID]; !ok {
			problems = append(problems, fmt.Sprintf("slide %q references missing lesson %q", id, sl.LessonID))
		}
		for i, block := range sl.ContentBlocks {
			if block.SubtopicID == "" {
				continue
			}
			if _, ok := snap.Subtopics[block.SubtopicID]; !ok {
				problems = append(problems, fmt.Sprintf("slide %q block %d references missing subtopic %q", id, i, block.SubtopicID))
			}
		}
	}
	for _, link := range snap.Links {
		if _, ok := snap.PerformanceCriteria[link.PCID]; !ok {
			problems = append(problems, fmt.Sprintf("link references missing performance criteria %q", link.PCID))
		}
		if !snapshotHasLinkTarget(snap, link) {
			problems = append(problems, fmt.Sprintf("link references missing %s %q", link.TargetType, link.TargetID))
		}
	}
	sort.Strings(problems)
	return problems
}

func snapshotHasLinkTarget(snap models.Snapshot, link models.PCLink) bool {
	switch link.TargetType {
	case models.NodeTypeLearningObjective:
		_, ok := snap.LearningObjectives[link.TargetID]
		return ok
	case models.NodeTypeTopic:
		_, ok := snap.Topics[link.TargetID]
		return ok
	case models.NodeTypeSubtopic:
		_, ok := snap.Subtopics[link.TargetID]
		return ok
	case models.NodeTypeLesson:
		_, ok := snap.Lessons[link.TargetID]
		return ok
	}
	return false
}
