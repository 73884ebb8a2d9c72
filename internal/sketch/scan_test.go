package sketch

import (
	"archive/zip"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/fcsketch/pkg/types"
)

// documentXML models the Document.xml layout FreeCAD writes: an object
// table declaring types, then per-object property blocks.
const documentXML = `<?xml version='1.0' encoding='utf-8'?>
<Document SchemaVersion="4">
    <Objects Count="2">
        <Object type="Sketcher::SketchObject" name="Sketch" />
        <Object type="App::Origin" name="Origin" />
    </Objects>
    <ObjectData Count="2">
        <Object name="Sketch">
            <Properties Count="5">
                <Property name="Label" type="App::PropertyString">
                    <String value="BasePlate"/>
                </Property>
                <Property name="Geometry" type="Part::PropertyGeometryList">
                    <GeometryList count="3">
                        <Geometry type="Part::GeomLineSegment">
                            <LineSegment StartX="0" StartY="0" StartZ="0" EndX="67.5472436778074297" EndY="0" EndZ="0"/>
                        </Geometry>
                        <Geometry type="Part::GeomArcOfCircle">
                            <ArcOfCircle CenterX="83.8837494467609588" CenterY="68.6823157097693269" CenterZ="0" NormalX="0" NormalY="0" NormalZ="1" Radius="36.6331336625265180" AngleXU="0" StartAngle="0" EndAngle="2.9080758210602404"/>
                        </Geometry>
                        <Geometry type="Part::GeomCircle">
                            <Construction value="1"/>
                            <Circle CenterX="10" CenterY="10" CenterZ="0" NormalZ="1" Radius="4" AngleXU="0"/>
                        </Geometry>
                    </GeometryList>
                </Property>
                <Property name="ExternalGeo" type="Part::PropertyGeometryList">
                    <GeometryList count="2">
                        <Geometry type="Part::GeomLineSegment" id="-1">
                            <Construction value="1"/>
                            <LineSegment StartX="0" StartY="0" StartZ="0" EndX="1" EndY="0" EndZ="0"/>
                        </Geometry>
                        <Geometry type="Part::GeomLineSegment" id="-2">
                            <Construction value="1"/>
                            <LineSegment StartX="0" StartY="0" StartZ="0" EndX="0" EndY="1" EndZ="0"/>
                        </Geometry>
                    </GeometryList>
                </Property>
                <Property name="Constraints" type="Sketcher::PropertyConstraintList">
                    <ConstraintList count="3">
                        <Constrain Name="" Type="1" Value="0" First="0" FirstPos="1" Second="-1" SecondPos="1" Third="-2000" ThirdPos="0"/>
                        <Constrain Name="" Type="6" Value="130" First="0" FirstPos="1" Second="0" SecondPos="2"/>
                        <Constrain Name="" Type="2" First="0" FirstPos="0"/>
                    </ConstraintList>
                </Property>
                <Property name="FullyConstrained" type="App::PropertyBool">
                    <Bool value="false"/>
                </Property>
            </Properties>
        </Object>
        <Object name="Origin">
            <Properties Count="0"/>
        </Object>
    </ObjectData>
</Document>`

func scanFixture(t *testing.T) types.Sketch {
	t.Helper()
	sketches, err := Scan(strings.NewReader(documentXML))
	if err != nil {
		t.Fatal(err)
	}
	sk, ok := sketches["Sketch"]
	if !ok {
		t.Fatalf("sketch not found; got %d sketches", len(sketches))
	}
	return sk
}

func TestScanNameAndLabel(t *testing.T) {
	sk := scanFixture(t)
	if sk.Name != "Sketch" {
		t.Errorf("Name = %q, want Sketch", sk.Name)
	}
	if sk.Label != "BasePlate" {
		t.Errorf("Label = %q, want BasePlate", sk.Label)
	}
	if sk.FullyConstrained {
		t.Error("FullyConstrained = true, want false")
	}
}

func TestScanSkipsNonSketchObjects(t *testing.T) {
	sketches, err := Scan(strings.NewReader(documentXML))
	if err != nil {
		t.Fatal(err)
	}
	if len(sketches) != 1 {
		t.Errorf("got %d sketches, want 1", len(sketches))
	}
	if _, ok := sketches["Origin"]; ok {
		t.Error("non-sketch object decoded as a sketch")
	}
}

func TestScanGeometryOrder(t *testing.T) {
	sk := scanFixture(t)
	if sk.GeometryCount() != 3 {
		t.Fatalf("GeometryCount = %d, want 3", sk.GeometryCount())
	}

	seg, ok := sk.Geometry[0].(types.LineSegment)
	if !ok {
		t.Fatalf("Geometry[0] is %T, want LineSegment", sk.Geometry[0])
	}
	if seg.StartPoint != (types.Vector{}) {
		t.Errorf("segment start = %+v, want origin", seg.StartPoint)
	}
	if math.Abs(seg.EndPoint.X-67.5472436778074297) > 1e-12 || seg.EndPoint.Y != 0 {
		t.Errorf("segment end = %+v", seg.EndPoint)
	}
	if seg.Construction {
		t.Error("segment marked construction")
	}

	arc, ok := sk.Geometry[1].(types.ArcOfCircle)
	if !ok {
		t.Fatalf("Geometry[1] is %T, want ArcOfCircle", sk.Geometry[1])
	}
	start, _ := types.StartPoint(arc)
	if math.Abs(start.X-(arc.Center.X+arc.Radius)) > 1e-9 || math.Abs(start.Y-arc.Center.Y) > 1e-9 {
		t.Errorf("arc start = %+v", start)
	}

	if !sk.Geometry[2].IsConstruction() {
		t.Error("Geometry[2] not marked construction")
	}
}

func TestScanExternalGeometry(t *testing.T) {
	sk := scanFixture(t)
	if sk.ExternalGeometryCount() != 2 {
		t.Fatalf("ExternalGeometryCount = %d, want 2", sk.ExternalGeometryCount())
	}
	for i, g := range sk.ExternalGeo {
		if !g.IsConstruction() {
			t.Errorf("ExternalGeo[%d] not marked construction", i)
		}
	}

	if len(sk.ExternalGeoByID) != 2 {
		t.Fatalf("external map has %d entries, want 2", len(sk.ExternalGeoByID))
	}
	// First encountered carries id -1, second -2; the map keys by the
	// stored id, not the sequence index.
	hAxis, ok := sk.ExternalGeoByID[-1].(types.LineSegment)
	if !ok {
		t.Fatal("external -1 missing or wrong type")
	}
	if hAxis.EndPoint != (types.Vector{X: 1}) {
		t.Errorf("external -1 end = %+v, want (1,0,0)", hAxis.EndPoint)
	}
	vAxis, ok := sk.ExternalGeoByID[-2].(types.LineSegment)
	if !ok {
		t.Fatal("external -2 missing or wrong type")
	}
	if vAxis.EndPoint != (types.Vector{Y: 1}) {
		t.Errorf("external -2 end = %+v, want (0,1,0)", vAxis.EndPoint)
	}
}

func TestScanExternalGeometryWithoutID(t *testing.T) {
	src := `<Document>
		<Objects><Object type="Sketcher::SketchObject" name="S"/></Objects>
		<ObjectData><Object name="S"><Properties>
			<Property name="ExternalGeo"><GeometryList>
				<Geometry type="Part::GeomLineSegment"><LineSegment EndX="1"/></Geometry>
				<Geometry type="Part::GeomLineSegment" id="-2"><LineSegment EndY="1"/></Geometry>
			</GeometryList></Property>
		</Properties></Object></ObjectData>
	</Document>`
	sketches, err := Scan(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	sk := sketches["S"]
	if len(sk.ExternalGeo) != 2 {
		t.Errorf("sequence has %d elements, want 2", len(sk.ExternalGeo))
	}
	if len(sk.ExternalGeoByID) != 1 {
		t.Errorf("map has %d entries, want 1 (id-less element omitted)", len(sk.ExternalGeoByID))
	}
	if _, ok := sk.ExternalGeoByID[-2]; !ok {
		t.Error("map missing stored id -2")
	}
}

func TestScanConstraints(t *testing.T) {
	sk := scanFixture(t)
	if sk.ConstraintCount() != 3 {
		t.Fatalf("ConstraintCount = %d, want 3", sk.ConstraintCount())
	}

	c := sk.Constraints[0]
	if c.Type != types.ConstraintCoincident {
		t.Errorf("Constraints[0].Type = %q, want Coincident", c.Type)
	}
	if c.First != 0 || c.FirstPos != types.PosStart || c.Second != -1 || c.SecondPos != types.PosStart {
		t.Errorf("Constraints[0] refs = %d/%s %d/%s", c.First, c.FirstPos, c.Second, c.SecondPos)
	}
	if c.Third != types.NoGeometry {
		t.Errorf("Constraints[0].Third = %d, want sentinel", c.Third)
	}

	c = sk.Constraints[1]
	if c.Type != types.ConstraintDistance || c.Value != 130 || !c.Driving {
		t.Errorf("Constraints[1] = %+v", c)
	}

	if sk.Constraints[2].Type != types.ConstraintHorizontal {
		t.Errorf("Constraints[2].Type = %q, want Horizontal", sk.Constraints[2].Type)
	}
}

func TestScanEmptyDocument(t *testing.T) {
	src := `<?xml version='1.0' encoding='utf-8'?>
	<Document SchemaVersion="4">
		<Objects Count="0"></Objects>
		<ObjectData Count="0"></ObjectData>
	</Document>`
	sketches, err := Scan(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(sketches) != 0 {
		t.Errorf("got %d sketches, want 0", len(sketches))
	}
}

func TestScanDeclaredSketchWithoutDataBlock(t *testing.T) {
	src := `<Document>
		<Objects><Object type="Sketcher::SketchObject" name="Ghost"/></Objects>
		<ObjectData/>
	</Document>`
	sketches, err := Scan(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	sk, ok := sketches["Ghost"]
	if !ok {
		t.Fatal("declared sketch missing from result")
	}
	if sk.Label != "Ghost" || sk.GeometryCount() != 0 || sk.ConstraintCount() != 0 {
		t.Errorf("absent data block produced %+v", sk)
	}
}

func TestScanObjectWithoutProperties(t *testing.T) {
	src := `<Document>
		<Objects><Object type="Sketcher::SketchObject" name="Bare"/></Objects>
		<ObjectData><Object name="Bare"/></ObjectData>
	</Document>`
	sketches, err := Scan(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	sk := sketches["Bare"]
	if sk.Name != "Bare" || sk.Label != "Bare" {
		t.Errorf("got %+v", sk)
	}
}

func TestScanFailsFastOnUnsupportedGeometry(t *testing.T) {
	src := `<Document>
		<Objects>
			<Object type="Sketcher::SketchObject" name="Good"/>
			<Object type="Sketcher::SketchObject" name="Bad"/>
		</Objects>
		<ObjectData>
			<Object name="Good"><Properties>
				<Property name="Geometry"><GeometryList>
					<Geometry type="Part::GeomPoint"><GeomPoint X="1"/></Geometry>
				</GeometryList></Property>
			</Properties></Object>
			<Object name="Bad"><Properties>
				<Property name="Geometry"><GeometryList>
					<Geometry type="Part::Bogus"><Bogus/></Geometry>
				</GeometryList></Property>
			</Properties></Object>
		</ObjectData>
	</Document>`
	sketches, err := Scan(strings.NewReader(src))
	if !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("err = %v, want ErrUnsupportedGeometry", err)
	}
	// One malformed sketch fails the whole read; no partial result.
	if sketches != nil {
		t.Errorf("got partial result with %d sketches, want nil", len(sketches))
	}
}

func TestScanFailsFastOnUnknownConstraint(t *testing.T) {
	src := `<Document>
		<Objects><Object type="Sketcher::SketchObject" name="S"/></Objects>
		<ObjectData><Object name="S"><Properties>
			<Property name="Constraints"><ConstraintList>
				<Constrain Type="42"/>
			</ConstraintList></Property>
		</Properties></Object></ObjectData>
	</Document>`
	if _, err := Scan(strings.NewReader(src)); !errors.Is(err, ErrUnknownConstraintType) {
		t.Errorf("err = %v, want ErrUnknownConstraintType", err)
	}
}

func TestReadFileMatchesScan(t *testing.T) {
	// The archive path and the direct byte-stream path must produce
	// identical records.
	path := filepath.Join(t.TempDir(), "BasePlate.FCStd")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("Document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	fromArchive, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	fromStream, err := Scan(strings.NewReader(documentXML))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fromArchive, fromStream) {
		t.Error("archive path and stream path disagree")
	}
}
