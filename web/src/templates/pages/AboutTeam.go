package pages

import (
	"strconv"

	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/motion"
	"github.com/everythingtalent/etsite/internal/view/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func aboutTeam(team content.Team) g.Node {
	members := make([]g.Node, 0, len(team.Members))
	for i, member := range team.Members {
		members = append(members, teamMember(member, i))
	}
	return h.Section(
		h.ID(team.ID),
		h.Class("py-14 md:py-24 bg-[#020817] flex items-center justify-center"),
		h.Div(
			h.Class("container px-4 mx-auto max-w-7xl"),
			sectionHeading(team.Heading, team.Intro, "max-w-2xl mx-auto"),
			h.Div(
				h.Class("grid grid-cols-2 md:grid-cols-3 lg:grid-cols-4 gap-8"),
				g.Group(members),
			),
		),
	)
}

func teamMember(member content.TeamMember, index int) g.Node {
	return motion.InView{Transition: motion.Stagger(index)}.Animate(
		components.Tooltip("team-tip-"+strconv.Itoa(index),
			h.Div(
				h.Class("team-member flex flex-col items-center"),
				components.Avatar(member.Image, member.Name, member.Initials()),
				h.H3(h.Class("text-lg font-semibold"), g.Text(member.Name)),
				h.P(h.Class("text-sm text-muted-foreground"), g.Text(member.Role)),
			),
			h.P(g.Text(member.Description)),
		),
	)
}
