package photos

/**************************************************************************************************
** ImageRenderer is the capability a presentation collaborator implements to display
** photos. The core never loads image bytes itself; a renderer only ever receives the
** photo, whose file path and capture time are everything it needs to drive whatever
** imaging facility the host environment provides.
**************************************************************************************************/
type ImageRenderer interface {
	Render(photo *Photo) error
}
