// Package gexf decodes GEXF graph files into element lists.
//
// GEXF (Graph Exchange XML Format) stores nodes and edges with declared
// attributes; attribute values reference their declaration by id:
//
//	<gexf version="1.2">
//	  <graph defaultedgetype="directed">
//	    <attributes class="node">
//	      <attribute id="0" title="pagerank" type="double"/>
//	    </attributes>
//	    <nodes>
//	      <node id="a" label="Node A">
//	        <attvalues><attvalue for="0" value="0.25"/></attvalues>
//	      </node>
//	    </nodes>
//	    <edges>
//	      <edge id="e0" source="a" target="b"/>
//	    </edges>
//	  </graph>
//	</gexf>
//
// Decoding resolves each attvalue to its declared title and type, so the
// resulting element data bags are keyed by attribute name with typed values
// (float64 for numeric declarations, bool for boolean, string otherwise).
// Node order and edge order in the file are preserved in the element list.
package gexf
