package store

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

// AddModule creates a module at the end of the module list
func (s *Store) AddModule(req models.AddModuleRequest) (models.Module, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Module{}, &ValidationError{Message: "module name is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := &models.Module{
		ID:    s.ids.NewID("module"),
		Name:  name,
		Order: len(s.modules) + 1,
	}
	s.modules[m.ID] = m
	return *m, nil
}

// UpdateModule applies a partial update. Identity and placement fields
// are rejected; placement changes go through MoveModule.
func (s *Store) UpdateModule(id string, req models.UpdateModuleRequest) (models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.modules[id]
	if !ok {
		return models.Module{}, &NotFoundError{Kind: "module", ID: id}
	}
	if req.ID != nil {
		return models.Module{}, &ImmutableFieldError{Kind: "module", Field: "id"}
	}
	if req.Type != nil {
		return models.Module{}, &ImmutableFieldError{Kind: "module", Field: "type"}
	}
	if req.Order != nil {
		return models.Module{}, &ImmutableFieldError{Kind: "module", Field: "order"}
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.Module{}, &ValidationError{Message: "module name is required"}
		}
		m.Name = name
	}
	return *m, nil
}

// MoveModule moves a module to a 1-based position in the module list
func (s *Store) MoveModule(id string, newOrder int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.modules[id]
	if !ok {
		return &NotFoundError{Kind: "module", ID: id}
	}

	ordered := s.orderedModulesLocked()
	target := clampOrder(newOrder, len(ordered))
	pos := 1
	for _, other := range ordered {
		if other.ID == id {
			continue
		}
		if pos == target {
			pos++
		}
		other.Order = pos
		pos++
	}
	m.Order = target
	return nil
}

// DeleteModule removes a module and its learning objectives. Topics of
// the removed objectives survive and move to the unlinked group, same
// as when their objective is deleted directly.
func (s *Store) DeleteModule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.modules[id]; !ok {
		return &NotFoundError{Kind: "module", ID: id}
	}

	for _, lo := range s.losOfLocked(id) {
		s.deleteLearningObjectiveLocked(lo.ID)
	}
	delete(s.modules, id)
	s.reflowModulesLocked()

	s.logger.Debug("module deleted", zap.String("module_id", id))
	return nil
}

// AddLearningObjective creates an objective at the end of its module's list
func (s *Store) AddLearningObjective(req models.AddLearningObjectiveRequest) (models.LearningObjective, error) {
	if strings.TrimSpace(req.Description) == "" {
		return models.LearningObjective{}, &ValidationError{Message: "objective description is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.modules[req.ModuleID]; !ok {
		return models.LearningObjective{}, &InvalidParentError{Kind: "learning objective", ParentID: req.ModuleID, Reason: "module does not exist"}
	}

	lo := &models.LearningObjective{
		ID:          s.ids.NewID("lo"),
		ModuleID:    req.ModuleID,
		Verb:        strings.TrimSpace(req.Verb),
		Description: strings.TrimSpace(req.Description),
		Order:       len(s.losOfLocked(req.ModuleID)) + 1,
	}
	s.los[lo.ID] = lo
	return *lo, nil
}

// UpdateLearningObjective applies a partial update. Re-parenting goes
// through MoveLearningObjective.
func (s *Store) UpdateLearningObjective(id string, req models.UpdateLearningObjectiveRequest) (models.LearningObjective, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lo, ok := s.los[id]
	if !ok {
		return models.LearningObjective{}, &NotFoundError{Kind: "learning objective", ID: id}
	}
	switch {
	case req.ID != nil:
		return models.LearningObjective{}, &ImmutableFieldError{Kind: "learning objective", Field: "id"}
	case req.Type != nil:
		return models.LearningObjective{}, &ImmutableFieldError{Kind: "learning objective", Field: "type"}
	case req.ModuleID != nil:
		return models.LearningObjective{}, &ImmutableFieldError{Kind: "learning objective", Field: "moduleId"}
	case req.Order != nil:
		return models.LearningObjective{}, &ImmutableFieldError{Kind: "learning objective", Field: "order"}
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return models.LearningObjective{}, &ValidationError{Message: "objective description is required"}
	}
	if req.Verb != nil {
		lo.Verb = strings.TrimSpace(*req.Verb)
	}
	if req.Description != nil {
		lo.Description = strings.TrimSpace(*req.Description)
	}
	if req.Expanded != nil {
		lo.Expanded = *req.Expanded
	}
	return *lo, nil
}

// MoveLearningObjective re-parents an objective into another module,
// appending at the end unless a position is given. Both the source and
// destination lists are renumbered.
func (s *Store) MoveLearningObjective(id string, req models.MoveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lo, ok := s.los[id]
	if !ok {
		return &NotFoundError{Kind: "learning objective", ID: id}
	}
	if _, ok := s.modules[req.NewParentID]; !ok {
		return &InvalidParentError{Kind: "learning objective", ParentID: req.NewParentID, Reason: "module does not exist"}
	}

	oldModule := lo.ModuleID
	lo.ModuleID = req.NewParentID
	lo.Order = 0 // placed below
	s.reflowLOsLocked(oldModule)
	s.placeInLOGroupLocked(lo, req.NewOrder)
	return nil
}

// DeleteLearningObjective removes an objective. Its topics survive and
// move to the end of the unlinked group; lesson references and
// performance criteria links to the objective are removed.
func (s *Store) DeleteLearningObjective(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lo, ok := s.los[id]
	if !ok {
		return &NotFoundError{Kind: "learning objective", ID: id}
	}
	moduleID := lo.ModuleID
	s.deleteLearningObjectiveLocked(id)
	s.reflowLOsLocked(moduleID)

	s.logger.Debug("learning objective deleted", zap.String("lo_id", id))
	return nil
}

// AddTopic creates a topic at the end of its group. An empty loId puts
// it in the unlinked group.
func (s *Store) AddTopic(req models.AddTopicRequest) (models.Topic, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Topic{}, &ValidationError{Message: "topic title is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.LOID != "" {
		if _, ok := s.los[req.LOID]; !ok {
			return models.Topic{}, &InvalidParentError{Kind: "topic", ParentID: req.LOID, Reason: "learning objective does not exist"}
		}
	}

	t := &models.Topic{
		ID:    s.ids.NewID("topic"),
		LOID:  req.LOID,
		Title: strings.TrimSpace(req.Title),
		Order: len(s.topicsOfLocked(req.LOID)) + 1,
	}
	s.topics[t.ID] = t
	return *t, nil
}

// UpdateTopic applies a partial update. Group changes go through MoveTopic.
func (s *Store) UpdateTopic(id string, req models.UpdateTopicRequest) (models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.topics[id]
	if !ok {
		return models.Topic{}, &NotFoundError{Kind: "topic", ID: id}
	}
	switch {
	case req.ID != nil:
		return models.Topic{}, &ImmutableFieldError{Kind: "topic", Field: "id"}
	case req.Type != nil:
		return models.Topic{}, &ImmutableFieldError{Kind: "topic", Field: "type"}
	case req.LOID != nil:
		return models.Topic{}, &ImmutableFieldError{Kind: "topic", Field: "loId"}
	case req.Order != nil:
		return models.Topic{}, &ImmutableFieldError{Kind: "topic", Field: "order"}
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return models.Topic{}, &ValidationError{Message: "topic title is required"}
		}
		t.Title = title
	}
	if req.Expanded != nil {
		t.Expanded = *req.Expanded
	}
	return *t, nil
}

// MoveTopic moves a topic into another group, appending at the end
// unless a position is given. An empty loID targets the unlinked group.
// Both groups are renumbered, which means every affected serial changes
// on the next read.
func (s *Store) MoveTopic(id string, loID string, newOrder *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.topics[id]
	if !ok {
		return &NotFoundError{Kind: "topic", ID: id}
	}
	if loID != "" {
		if _, ok := s.los[loID]; !ok {
			return &InvalidParentError{Kind: "topic", ParentID: loID, Reason: "learning objective does not exist"}
		}
	}

	oldGroup := t.LOID
	t.LOID = loID
	t.Order = 0 // placed below
	s.reflowTopicsLocked(oldGroup)
	s.placeInTopicGroupLocked(t, newOrder)
	return nil
}

// RelinkTopic attaches a topic to a learning objective, or detaches it
// when loID is empty. The topic lands at the end of the target group.
func (s *Store) RelinkTopic(id string, loID string) error {
	return s.MoveTopic(id, loID, nil)
}

// DeleteTopic removes a topic, its subtopics, and every reference to
// them: lesson coverage, performance criteria links, and slide content
// block bindings.
func (s *Store) DeleteTopic(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.topics[id]
	if !ok {
		return &NotFoundError{Kind: "topic", ID: id}
	}
	group := t.LOID
	s.deleteTopicLocked(id)
	s.reflowTopicsLocked(group)

	s.logger.Debug("topic deleted", zap.String("topic_id", id))
	return nil
}

// AddSubtopic creates a subtopic at the end of its topic's list
func (s *Store) AddSubtopic(req models.AddSubtopicRequest) (models.Subtopic, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Subtopic{}, &ValidationError{Message: "subtopic title is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.topics[req.TopicID]; !ok {
		return models.Subtopic{}, &InvalidParentError{Kind: "subtopic", ParentID: req.TopicID, Reason: "topic does not exist"}
	}

	st := &models.Subtopic{
		ID:      s.ids.NewID("subtopic"),
		TopicID: req.TopicID,
		Title:   strings.TrimSpace(req.Title),
		Order:   len(s.subtopicsOfLocked(req.TopicID)) + 1,
	}
	s.subtopics[st.ID] = st
	return *st, nil
}

// UpdateSubtopic applies a partial update. Re-parenting goes through MoveSubtopic.
func (s *Store) UpdateSubtopic(id string, req models.UpdateSubtopicRequest) (models.Subtopic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.subtopics[id]
	if !ok {
		return models.Subtopic{}, &NotFoundError{Kind: "subtopic", ID: id}
	}
	switch {
	case req.ID != nil:
		return models.Subtopic{}, &ImmutableFieldError{Kind: "subtopic", Field: "id"}
	case req.Type != nil:
		return models.Subtopic{}, &ImmutableFieldError{Kind: "subtopic", Field: "type"}
	case req.TopicID != nil:
		return models.Subtopic{}, &ImmutableFieldError{Kind: "subtopic", Field: "topicId"}
	case req.Order != nil:
		return models.Subtopic{}, &ImmutableFieldError{Kind: "subtopic", Field: "order"}
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return models.Subtopic{}, &ValidationError{Message: "subtopic title is required"}
		}
		st.Title = title
	}
	return *st, nil
}

// MoveSubtopic moves a subtopic under another topic, appending at the
// end unless a position is given
func (s *Store) MoveSubtopic(id string, req models.MoveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.subtopics[id]
	if !ok {
		return &NotFoundError{Kind: "subtopic", ID: id}
	}
	if _, ok := s.topics[req.NewParentID]; !ok {
		return &InvalidParentError{Kind: "subtopic", ParentID: req.NewParentID, Reason: "topic does not exist"}
	}

	oldTopic := st.TopicID
	st.TopicID = req.NewParentID
	st.Order = 0 // placed below
	s.reflowSubtopicsLocked(oldTopic)
	s.placeInSubtopicGroupLocked(st, req.NewOrder)
	return nil
}

// DeleteSubtopic removes a subtopic together with its performance
// criteria links and slide content block bindings
func (s *Store) DeleteSubtopic(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.subtopics[id]
	if !ok {
		return &NotFoundError{Kind: "subtopic", ID: id}
	}
	topicID := st.TopicID
	s.deleteSubtopicLocked(id)
	s.reflowSubtopicsLocked(topicID)
	return nil
}

// AddPerformanceCriteria creates a performance criteria
func (s *Store) AddPerformanceCriteria(req models.AddPerformanceCriteriaRequest) (models.PerformanceCriteria, error) {
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		return models.PerformanceCriteria{}, &ValidationError{Message: "performance criteria description is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pc := &models.PerformanceCriteria{
		ID:          s.ids.NewID("pc"),
		Description: desc,
	}
	s.pcs[pc.ID] = pc
	return *pc, nil
}

// UpdatePerformanceCriteria applies a partial update
func (s *Store) UpdatePerformanceCriteria(id string, req models.UpdatePerformanceCriteriaRequest) (models.PerformanceCriteria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pc, ok := s.pcs[id]
	if !ok {
		return models.PerformanceCriteria{}, &NotFoundError{Kind: "performance criteria", ID: id}
	}
	if req.ID != nil {
		return models.PerformanceCriteria{}, &ImmutableFieldError{Kind: "performance criteria", Field: "id"}
	}
	if req.Type != nil {
		return models.PerformanceCriteria{}, &ImmutableFieldError{Kind: "performance criteria", Field: "type"}
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		if desc == "" {
			return models.PerformanceCriteria{}, &ValidationError{Message: "performance criteria description is required"}
		}
		pc.Description = desc
	}
	return *pc, nil
}

// DeletePerformanceCriteria removes a criteria and all of its links
func (s *Store) DeletePerformanceCriteria(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pcs[id]; !ok {
		return &NotFoundError{Kind: "performance criteria", ID: id}
	}
	delete(s.pcs, id)
	s.links = filterLinks(s.links, func(l models.PCLink) bool { return l.PCID != id })
	for _, lesson := range s.lessons {
		lesson.PerformanceCriteria = removeString(lesson.PerformanceCriteria, id)
	}
	return nil
}

// cascade helpers; callers hold s.mu and are responsible for reflowing
// the group the deleted entity left behind

func (s *Store) deleteLearningObjectiveLocked(id string) {
	unlinked := len(s.topicsOfLocked(""))
	for _, t := range s.topicsOfLocked(id) {
		unlinked++
		s.topics[t.ID].LOID = ""
		s.topics[t.ID].Order = unlinked
	}
	delete(s.los, id)
	s.links = filterLinks(s.links, func(l models.PCLink) bool { return l.TargetID != id })
	for _, lesson := range s.lessons {
		lesson.LearningObjectives = removeString(lesson.LearningObjectives, id)
	}
}

func (s *Store) deleteTopicLocked(id string) {
	for _, st := range s.subtopicsOfLocked(id) {
		s.deleteSubtopicLocked(st.ID)
	}
	delete(s.topics, id)
	s.links = filterLinks(s.links, func(l models.PCLink) bool { return l.TargetID != id })
	for _, lesson := range s.lessons {
		lesson.Topics = removeString(lesson.Topics, id)
	}
}

func (s *Store) deleteSubtopicLocked(id string) {
	delete(s.subtopics, id)
	s.links = filterLinks(s.links, func(l models.PCLink) bool { return l.TargetID != id })
	for _, sl := range s.slides {
		for i := range sl.ContentBlocks {
			if sl.ContentBlocks[i].SubtopicID == id {
				sl.ContentBlocks[i].SubtopicID = ""
			}
		}
	}
}

// reflow and placement helpers; callers hold s.mu

func (s *Store) orderedModulesLocked() []*models.Module {
	out := make([]*models.Module, 0, len(s.modules))
	for _, m := range s.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *Store) reflowModulesLocked() {
	for i, m := range s.orderedModulesLocked() {
		m.Order = i + 1
	}
}

func (s *Store) reflowLOsLocked(moduleID string) {
	for i, lo := range s.losOfLocked(moduleID) {
		s.los[lo.ID].Order = i + 1
	}
}

func (s *Store) reflowTopicsLocked(loID string) {
	for i, t := range s.topicsOfLocked(loID) {
		s.topics[t.ID].Order = i + 1
	}
}

func (s *Store) reflowSubtopicsLocked(topicID string) {
	for i, st := range s.subtopicsOfLocked(topicID) {
		s.subtopics[st.ID].Order = i + 1
	}
}

func (s *Store) placeInLOGroupLocked(lo *models.LearningObjective, newOrder *int) {
	siblings := s.losOfLocked(lo.ModuleID)
	lo.Order = insertionOrder(len(siblings), newOrder)
	pos := 1
	for _, sib := range siblings {
		if sib.ID == lo.ID {
			continue
		}
		if pos == lo.Order {
			pos++
		}
		s.los[sib.ID].Order = pos
		pos++
	}
}

func (s *Store) placeInTopicGroupLocked(t *models.Topic, newOrder *int) {
	siblings := s.topicsOfLocked(t.LOID)
	t.Order = insertionOrder(len(siblings), newOrder)
	pos := 1
	for _, sib := range siblings {
		if sib.ID == t.ID {
			continue
		}
		if pos == t.Order {
			pos++
		}
		s.topics[sib.ID].Order = pos
		pos++
	}
}

func (s *Store) placeInSubtopicGroupLocked(st *models.Subtopic, newOrder *int) {
	siblings := s.subtopicsOfLocked(st.TopicID)
	st.Order = insertionOrder(len(siblings), newOrder)
	pos := 1
	for _, sib := range siblings {
		if sib.ID == st.ID {
			continue
		}
		if pos == st.Order {
			pos++
		}
		s.subtopics[sib.ID].Order = pos
		pos++
	}
}

// insertionOrder resolves the 1-based target position within a group
// that already contains the moved entity (len includes it). A nil or
// out-of-range position appends at the end.
func insertionOrder(groupLen int, newOrder *int) int {
	if newOrder == nil {
		return groupLen
	}
	return clampOrder(*newOrder, groupLen)
}

func clampOrder(order, max int) int {
	if order < 1 {
		return 1
	}
	if order > max {
		return max
	}
	return order
}

func filterLinks(links []models.PCLink, keep func(models.PCLink) bool) []models.PCLink {
	out := links[:0]
	for _, l := range links {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func removeString(in []string, id string) []string {
	out := in[:0]
	for _, v := range in {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
