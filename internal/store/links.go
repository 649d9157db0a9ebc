package store

import (
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

// Link attaches a performance criteria to a target entity. Each pair
// links at most once; a second attempt fails with DuplicateLinkError.
func (s *Store) Link(req models.LinkRequest) error {
	if !req.TargetType.IsLinkTarget() {
		return &ValidationError{Message: "performance criteria cannot link to " + string(req.TargetType)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pcs[req.PCID]; !ok {
		return &NotFoundError{Kind: "performance criteria", ID: req.PCID}
	}
	if !s.linkTargetExistsLocked(req.TargetType, req.TargetID) {
		return &NotFoundError{Kind: string(req.TargetType), ID: req.TargetID}
	}
	for _, l := range s.links {
		if l.PCID == req.PCID && l.TargetID == req.TargetID {
			return &DuplicateLinkError{PCID: req.PCID, TargetID: req.TargetID}
		}
	}

	s.links = append(s.links, models.PCLink{
		PCID:       req.PCID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
	})
	if req.TargetType == models.NodeTypeLesson {
		lesson := s.lessons[req.TargetID]
		lesson.PerformanceCriteria = append(lesson.PerformanceCriteria, req.PCID)
	}
	s.logger.Debug("criteria linked",
		zap.String("pc_id", req.PCID),
		zap.String("target_type", string(req.TargetType)),
		zap.String("target_id", req.TargetID))
	return nil
}

// Unlink removes a link between a criteria and a target. Removing a link
// that does not exist is a no-op.
func (s *Store) Unlink(req models.LinkRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.links)
	s.links = filterLinks(s.links, func(l models.PCLink) bool {
		return !(l.PCID == req.PCID && l.TargetID == req.TargetID)
	})
	if len(s.links) == before {
		return nil
	}
	if lesson, ok := s.lessons[req.TargetID]; ok {
		lesson.PerformanceCriteria = removeString(lesson.PerformanceCriteria, req.PCID)
	}
	return nil
}

// Links returns every criteria link
func (s *Store) Links() []models.PCLink {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PCLink(nil), s.links...)
}

// LinksFor returns the links of one performance criteria
func (s *Store) LinksFor(pcID string) ([]models.PCLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pcs[pcID]; !ok {
		return nil, &NotFoundError{Kind: "performance criteria", ID: pcID}
	}
	var out []models.PCLink
	for _, l := range s.links {
		if l.PCID == pcID {
			out = append(out, l)
		}
	}
	return out, nil
}

// LinksTo returns the links pointing at one target entity
func (s *Store) LinksTo(targetID string) []models.PCLink {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.PCLink
	for _, l := range s.links {
		if l.TargetID == targetID {
			out = append(out, l)
		}
	}
	return out
}

func (s *Store) linkTargetExistsLocked(t models.NodeType, id string) bool {
	switch t {
	case models.NodeTypeLearningObjective:
		_, ok := s.los[id]
		return ok
	case models.NodeTypeTopic:
		_, ok := s.topics[id]
		return ok
	case models.NodeTypeSubtopic:
		_, ok := s.subtopics[id]
		return ok
	case models.NodeTypeLesson:
		_, ok := s.lessons[id]
		return ok
	}
	return false
}
