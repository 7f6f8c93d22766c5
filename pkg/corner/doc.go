// Package corner builds rounded-rectangle paths with four independent
// corner radii and paints them around externally drawn content.
//
// A corner path is a pure function of the box size and the radii:
//
//	path, err := corner.BuildPath(120, 80, corner.Radii{LeftTop: 16, RightBottom: 16})
//
// Render paints in a fixed order: clip to the path, fill the background,
// draw the content inside the clip, stroke the outline on top.
//
//	corner.Render(canvas, path, corner.DefaultStyle(), func(c graphics.Canvas) {
//	    c.DrawImageRect(img, graphics.Rect{}, dst, graphics.FilterQualityMedium)
//	})
//
// Renderer keeps radii, style and a PathCache together for a view that is
// painted repeatedly and resized occasionally.
package corner
