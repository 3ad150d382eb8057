package domain

import (
	"fmt"
	"time"
)

// for debug
func (p *Post) String() string {
	return fmt.Sprintf("[id:%d, thread:%d, name:%s, text:%s, created:%s]",
		p.Id, p.Thread, p.Name, p.Text, p.CreatedAt.Format(time.StampMilli))
}

func (t *Thread) String() string {
	s := fmt.Sprintf("[id:%d, board:%s, subject:%s, replies:%d, bumped:%v, posts:[", t.Id, t.Board, t.Subject, t.ReplyCount, t.BumpTime)
	for i, post := range t.Posts {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", post)
	}
	return s + "]]"
}
